package display

import "testing"

func TestMetric(t *testing.T) {
	cases := []struct {
		key, want string
	}{
		{"accuracy", "Accuracy"},
		{"f1Score", "F1 score"},
		{"meanAbsoluteError", "Mean absolute error"},
		{"macroF1Score", "Macro F1 score"},
		{"meanAveragePrecision", "Mean average precision"},
		{"unknown", "unknown"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Metric(tc.key); got != tc.want {
			t.Errorf("Metric(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestMetricWithCode(t *testing.T) {
	if got := MetricWithCode("recallScore"); got != "Recall (recallScore)" {
		t.Errorf("got %q", got)
	}
	if got := MetricWithCode("bogus"); got != "bogus" {
		t.Errorf("got %q", got)
	}
}

func TestMetricList(t *testing.T) {
	got := MetricList([]string{"accuracy", "hammingScore", "custom"})
	if got != "Accuracy, Hamming score, custom" {
		t.Errorf("got %q", got)
	}
	if got := MetricList(nil); got != "" {
		t.Errorf("MetricList(nil) = %q", got)
	}
}

func TestTask(t *testing.T) {
	cases := []struct {
		tag, want string
	}{
		{"regression", "Regression"},
		{"binary-classification", "Binary classification"},
		{"object-detection", "Object detection"},
		{"other", "other"},
	}
	for _, tc := range cases {
		if got := Task(tc.tag); got != tc.want {
			t.Errorf("Task(%q) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestChart(t *testing.T) {
	cases := []struct {
		kind, want string
	}{
		{"metric", "Metric chart"},
		{"confusion-matrix", "Confusion matrix"},
		{"regression-distribution", "Regression distribution"},
		{"", "(not checked)"},
		{"pie", "pie"},
	}
	for _, tc := range cases {
		if got := Chart(tc.kind); got != tc.want {
			t.Errorf("Chart(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestPresence(t *testing.T) {
	if got := Presence("must-exist"); got != "present" {
		t.Errorf("got %q", got)
	}
	if got := Presence("must-not-exist"); got != "absent" {
		t.Errorf("got %q", got)
	}
	if got := Presence("unchecked"); got != "not checked" {
		t.Errorf("got %q", got)
	}
}

func TestOutcome(t *testing.T) {
	if Outcome(true) != "PASS" || Outcome(false) != "FAIL" {
		t.Error("Outcome mapping wrong")
	}
}

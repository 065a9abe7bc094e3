package format_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"dashcheck/internal/dataset"
	"dashcheck/internal/expect"
	"dashcheck/internal/format"
	"dashcheck/internal/verify"
)

func TestTable_DualFormat(t *testing.T) {
	build := func(m format.Mode) string {
		return format.NewTable(m).Header("A", "B").Row("x", "y").Footer("total", 1).String()
	}

	ascii := build(format.ASCII)
	md := build(format.Markdown)

	if ascii == md {
		t.Error("ASCII and Markdown output should differ")
	}
	if !strings.Contains(ascii, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", ascii)
	}
	if !strings.Contains(md, "| A") || !strings.Contains(md, "---") {
		t.Errorf("expected markdown header and separator:\n%s", md)
	}
	for _, out := range []string{ascii, md} {
		if !strings.Contains(out, "x") || !strings.Contains(out, "total") {
			t.Errorf("expected data and footer in output:\n%s", out)
		}
	}
}

func TestExpectationTable(t *testing.T) {
	d, err := dataset.Load("adult-census-income")
	if err != nil {
		t.Fatal(err)
	}
	e := expect.Resolve(d, expect.Mode{Notebook: true})
	out := format.ExpectationTable(format.ASCII, e)

	for _, want := range []string{"adult-census-income", "Binary classification", "Accuracy", "All data"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	for _, c := range e.Cohorts {
		if !strings.Contains(out, c.SampleSize) {
			t.Errorf("missing sample size %q for %s:\n%s", c.SampleSize, c.Name, out)
		}
	}
}

func TestPresenceTable(t *testing.T) {
	d, err := dataset.Load("boston-housing")
	if err != nil {
		t.Fatal(err)
	}
	out := format.PresenceTable(format.Markdown, expect.Resolve(d, expect.Mode{Notebook: true}))

	for _, want := range []string{"ModelOverviewFeatureSelection", "absent", "Regression distribution"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestPresenceTable_VisionSkipsCharts(t *testing.T) {
	d, err := dataset.Load("fridge-object-detection")
	if err != nil {
		t.Fatal(err)
	}
	out := format.PresenceTable(format.ASCII, expect.Resolve(d, expect.Mode{Vision: true}))
	if !strings.Contains(out, "(not checked)") {
		t.Errorf("expected unchecked default chart:\n%s", out)
	}
}

func TestResultsTable(t *testing.T) {
	out := format.ResultsTable(format.ASCII, []verify.Result{
		{Dataset: "iris", Duration: 1500 * time.Millisecond},
		{Dataset: "boston-housing", Err: errors.New("heatmap-cells:\n  12 cells"), Duration: 300 * time.Millisecond},
	})

	for _, want := range []string{"iris", "PASS", "FAIL", "1.5s", "300ms", "heatmap-cells: 12 cells", "1/2"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1.0s"},
		{59 * time.Second, "59.0s"},
		{90 * time.Second, "1m 30s"},
		{5*time.Minute + 15*time.Second, "5m 15s"},
	}
	for _, tc := range tests {
		if got := format.Duration(tc.in); got != tc.want {
			t.Errorf("Duration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"abcdef", 3, "abc"},
		{"ÄÖÜäöü", 5, "ÄÖ..."},
	}
	for _, tc := range tests {
		if got := format.Truncate(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}

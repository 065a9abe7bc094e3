// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output, markdown reports, and logs.
// Keep raw codes for JSON fields, map keys, and equality comparisons.
package display

import "strings"

// --- Metrics ---

var metrics = map[string]string{
	"accuracy":             "Accuracy",
	"f1Score":              "F1 score",
	"precisionScore":       "Precision",
	"recallScore":          "Recall",
	"falsePositiveRate":    "False positive rate",
	"falseNegativeRate":    "False negative rate",
	"selectionRate":        "Selection rate",
	"macroF1Score":         "Macro F1 score",
	"macroPrecisionScore":  "Macro precision",
	"macroRecallScore":     "Macro recall",
	"meanAbsoluteError":    "Mean absolute error",
	"meanSquaredError":     "Mean squared error",
	"meanPrediction":       "Mean prediction",
	"exactMatchRatio":      "Exact match ratio",
	"hammingScore":         "Hamming score",
	"meanAveragePrecision": "Mean average precision",
	"averagePrecision":     "Average precision",
	"averageRecall":        "Average recall",
}

// Metric returns the human-readable name for a metric key.
// Unknown keys are returned as-is.
func Metric(key string) string {
	if name, ok := metrics[key]; ok {
		return name
	}
	return key
}

// MetricWithCode returns "Mean absolute error (meanAbsoluteError)" format.
func MetricWithCode(key string) string {
	if name, ok := metrics[key]; ok {
		return name + " (" + key + ")"
	}
	return key
}

// MetricList joins the human names of keys with ", ".
func MetricList(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = Metric(k)
	}
	return strings.Join(names, ", ")
}

// --- Task types ---

var tasks = map[string]string{
	"regression":                "Regression",
	"image-classification":      "Image classification",
	"multilabel":                "Multilabel classification",
	"object-detection":          "Object detection",
	"binary-classification":     "Binary classification",
	"multiclass-classification": "Multiclass classification",
}

// Task returns the human-readable name for a task type tag.
func Task(tag string) string {
	if name, ok := tasks[tag]; ok {
		return name
	}
	return tag
}

// --- Charts ---

var charts = map[string]string{
	"metric":                  "Metric chart",
	"confusion-matrix":        "Confusion matrix",
	"regression-distribution": "Regression distribution",
}

// Chart returns the human-readable name for a chart kind.
// The empty kind reads as "(not checked)".
func Chart(kind string) string {
	if kind == "" {
		return "(not checked)"
	}
	if name, ok := charts[kind]; ok {
		return name
	}
	return kind
}

// --- Presence ---

var presence = map[string]string{
	"unchecked":      "not checked",
	"must-exist":     "present",
	"must-not-exist": "absent",
}

// Presence returns the human-readable form of a presence requirement.
func Presence(code string) string {
	if name, ok := presence[code]; ok {
		return name
	}
	return code
}

// Outcome renders a pass result as PASS or FAIL.
func Outcome(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

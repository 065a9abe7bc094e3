package expect

import "dashcheck/internal/dataset"

var metricOrders = map[dataset.TaskType][]dataset.MetricKey{
	dataset.TaskRegression: {
		dataset.MeanAbsoluteError,
		dataset.MeanSquaredError,
		dataset.MeanPrediction,
	},
	dataset.TaskImageClassification: {
		dataset.Accuracy,
		dataset.F1Score,
		dataset.PrecisionScore,
		dataset.RecallScore,
		dataset.FalsePositiveRate,
		dataset.FalseNegativeRate,
		dataset.SelectionRate,
	},
	dataset.TaskMultiLabel: {
		dataset.ExactMatchRatio,
		dataset.HammingScore,
	},
	dataset.TaskObjectDetection: {
		dataset.MeanAveragePrecision,
		dataset.AveragePrecision,
		dataset.AverageRecall,
	},
	dataset.TaskBinary: {
		dataset.Accuracy,
		dataset.FalsePositiveRate,
		dataset.FalseNegativeRate,
		dataset.SelectionRate,
	},
	dataset.TaskMulticlass: {
		dataset.Accuracy,
		dataset.MacroF1Score,
		dataset.MacroPrecisionScore,
		dataset.MacroRecallScore,
	},
}

// MetricOrder returns the metric columns the cohort table shows for task,
// in display order. The result is a fresh slice.
func MetricOrder(task dataset.TaskType) []dataset.MetricKey {
	return append([]dataset.MetricKey(nil), metricOrders[task]...)
}

// ResolveMetricOrder returns the metric columns for d. It depends on the
// task-type flags only, never on which cohorts are present.
func ResolveMetricOrder(d *dataset.Descriptor) []dataset.MetricKey {
	return MetricOrder(d.TaskType())
}

// MissingMetrics reports, per cohort name, the metrics the task requires but
// the fixture leaves empty. A nil map means the fixture is complete.
func MissingMetrics(d *dataset.Descriptor) map[string][]dataset.MetricKey {
	order := ResolveMetricOrder(d)
	var missing map[string][]dataset.MetricKey
	for _, c := range ComposeActiveCohorts(d, true) {
		for _, key := range order {
			if c.Metric(key) != "" {
				continue
			}
			if missing == nil {
				missing = make(map[string][]dataset.MetricKey)
			}
			missing[c.Name] = append(missing[c.Name], key)
		}
	}
	return missing
}

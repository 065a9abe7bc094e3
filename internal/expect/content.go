package expect

import "dashcheck/internal/dataset"

// AssembleExpectedContent flattens the heatmap into display strings: the
// sample size of every cohort, then for each metric in order the value of
// every cohort. Cohort order is preserved within each block.
func AssembleExpectedContent(cohorts []dataset.Cohort, order []dataset.MetricKey) []string {
	out := make([]string, 0, ExpectedCellCount(len(cohorts), len(order)))
	for _, c := range cohorts {
		out = append(out, c.SampleSize)
	}
	for _, key := range order {
		for _, c := range cohorts {
			out = append(out, c.Metric(key))
		}
	}
	return out
}

// ExpectedCellCount is the number of heatmap cells for the given shape:
// one sample-size row plus one row per metric, for every cohort.
func ExpectedCellCount(cohorts, metrics int) int {
	return cohorts * (metrics + 1)
}

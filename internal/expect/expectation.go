package expect

import (
	"dashcheck/internal/dataset"
	"dashcheck/internal/ui"
)

// Expectation is everything the dataset cohorts view must satisfy for one
// descriptor in one mode.
type Expectation struct {
	Dataset      string                  `json:"dataset"`
	Task         dataset.TaskType        `json:"task"`
	MetricOrder  []dataset.MetricKey     `json:"metric_order"`
	Cohorts      []dataset.Cohort        `json:"cohorts"`
	Content      []string                `json:"content"`
	CellCount    int                     `json:"cell_count"`
	DefaultChart ui.ChartKind            `json:"default_chart,omitempty"`
	Presence     map[ui.Locator]Presence `json:"presence"`
}

// Resolve computes the full expectation for d in mode. DefaultChart is empty
// when mode skips chart checks.
func Resolve(d *dataset.Descriptor, mode Mode) Expectation {
	order := ResolveMetricOrder(d)
	cohorts := ComposeActiveCohorts(d, mode.IncludeNewCohort)
	e := Expectation{
		Dataset:     d.Name,
		Task:        d.TaskType(),
		MetricOrder: order,
		Cohorts:     cohorts,
		Content:     AssembleExpectedContent(cohorts, order),
		CellCount:   ExpectedCellCount(len(cohorts), len(order)),
		Presence:    RequiredElementPresence(d, mode),
	}
	if ChecksCharts(mode) {
		e.DefaultChart = DefaultVisibleChart(d.IsRegression, d.IsBinary)
	}
	return e
}

package verify

import (
	"context"
	"fmt"
	"strings"

	"dashcheck/internal/dataset"
	"dashcheck/internal/expect"
	"dashcheck/internal/ui"
)

// MetricChartChecker verifies the metric chart once it is known to be the
// default chart.
type MetricChartChecker interface {
	CheckMetricChart(ctx context.Context, drv ui.Driver, d *dataset.Descriptor, e expect.Expectation, mode expect.Mode) error
}

// MetricChartFunc adapts a function to MetricChartChecker.
type MetricChartFunc func(ctx context.Context, drv ui.Driver, d *dataset.Descriptor, e expect.Expectation, mode expect.Mode) error

func (f MetricChartFunc) CheckMetricChart(ctx context.Context, drv ui.Driver, d *dataset.Descriptor, e expect.Expectation, mode expect.Mode) error {
	return f(ctx, drv, d, e, mode)
}

// CohortLabelChecker asserts that the metric chart labels every active cohort.
type CohortLabelChecker struct{}

func (CohortLabelChecker) CheckMetricChart(ctx context.Context, drv ui.Driver, _ *dataset.Descriptor, e expect.Expectation, _ expect.Mode) error {
	const step = "metric-chart"
	text, err := drv.Text(ctx, ui.MetricChart)
	if err != nil {
		return mismatch(step, ui.MetricChart, "chart text", "no text", err)
	}
	for _, c := range e.Cohorts {
		if !strings.Contains(text, c.Name) {
			return mismatch(step, ui.MetricChart, fmt.Sprintf("label %q", c.Name), fmt.Sprintf("%q", text), nil)
		}
	}
	return nil
}

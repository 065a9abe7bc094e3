package ui

// ChartKind is one of the charts the model-overview page can show by default.
type ChartKind string

const (
	ChartMetric                 ChartKind = "metric"
	ChartConfusionMatrix        ChartKind = "confusion-matrix"
	ChartRegressionDistribution ChartKind = "regression-distribution"
)

var chartLocators = map[ChartKind]Locator{
	ChartMetric:                 MetricChart,
	ChartConfusionMatrix:        ConfusionMatrix,
	ChartRegressionDistribution: RegressionDistributionChart,
}

// AllCharts lists every chart kind in a stable order.
func AllCharts() []ChartKind {
	return []ChartKind{ChartMetric, ChartConfusionMatrix, ChartRegressionDistribution}
}

// Locator returns the locator of the chart's container.
func (k ChartKind) Locator() Locator {
	return chartLocators[k]
}

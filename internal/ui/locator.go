// Package ui names the dashboard elements the verifier queries and defines
// the capability interfaces a UI driver must provide.
//
// Locators are opaque names. The CSS selector behind each one belongs to the
// dashboard's rendering contract and lives in a Selectors map that callers
// may override.
package ui

import "fmt"

// Locator names one element (or element set) on the model-overview page.
type Locator string

const (
	FeatureSelection                    Locator = "ModelOverviewFeatureSelection"
	FeatureConfigurationActionButton    Locator = "ModelOverviewFeatureConfigurationActionButton"
	DatasetCohortStatsTable             Locator = "ModelOverviewDatasetCohortStatsTable"
	HeatmapVisualDisplayToggle          Locator = "ModelOverviewHeatmapVisualDisplayToggle"
	HeatmapCells                        Locator = "ModelOverviewHeatmapCells"
	HeatmapCellShapes                   Locator = "ModelOverviewHeatmapCellShapes"
	DisaggregatedAnalysisTable          Locator = "ModelOverviewDisaggregatedAnalysisTable"
	DisaggregatedAnalysisBaseDisclaimer Locator = "ModelOverviewDisaggregatedAnalysisBaseCohortDisclaimer"
	DisaggregatedAnalysisBaseWarning    Locator = "ModelOverviewDisaggregatedAnalysisBaseCohortWarning"
	TableYAxisGrid                      Locator = "ModelOverviewTableYAxisGrid"
	DatasetCohortViewButton             Locator = "ModelOverviewCohortViewDatasetCohortViewButton"
	MetricChart                         Locator = "ModelOverviewMetricChart"
	ConfusionMatrix                     Locator = "ModelOverviewConfusionMatrix"
	RegressionDistributionChart         Locator = "ModelOverviewRegressionDistributionChart"
	CreateCohortButton                  Locator = "CreateNewCohortButton"
	CohortNameInput                     Locator = "CohortNameInput"
	SaveCohortButton                    Locator = "SaveCohortButton"
)

// Selectors maps locators to CSS selectors.
type Selectors map[Locator]string

// DefaultSelectors returns the selectors of the stock dashboard build.
func DefaultSelectors() Selectors {
	return Selectors{
		FeatureSelection:                    "#ModelOverviewFeatureSelection",
		FeatureConfigurationActionButton:    "#ModelOverviewFeatureConfigurationActionButton",
		DatasetCohortStatsTable:             "#ModelOverviewDatasetCohortStatsTable",
		HeatmapVisualDisplayToggle:          "#ModelOverviewHeatmapVisualDisplayToggle",
		HeatmapCells:                        "#ModelOverviewDatasetCohortStatsTable .highcharts-data-label text",
		HeatmapCellShapes:                   "#ModelOverviewDatasetCohortStatsTable path.highcharts-point",
		DisaggregatedAnalysisTable:          "#ModelOverviewDisaggregatedAnalysisTable",
		DisaggregatedAnalysisBaseDisclaimer: "#ModelOverviewDisaggregatedAnalysisBaseCohortDisclaimer",
		DisaggregatedAnalysisBaseWarning:    "#ModelOverviewDisaggregatedAnalysisBaseCohortWarning",
		TableYAxisGrid:                      "#ModelOverviewDatasetCohortStatsTable .highcharts-yaxis-labels",
		DatasetCohortViewButton:             "#ModelOverviewCohortViewSelector button:nth-of-type(1)",
		MetricChart:                         "#ModelOverviewMetricChart",
		ConfusionMatrix:                     "#ModelOverviewConfusionMatrix",
		RegressionDistributionChart:         "#ModelOverviewRegressionDistributionChart",
		CreateCohortButton:                  "#CreateNewCohortButton",
		CohortNameInput:                     "#cohortEditPanel input[name='cohortName']",
		SaveCohortButton:                    "#cohortEditPanel button[type='submit']",
	}
}

// Merge returns a copy of s with every entry of overrides applied.
func (s Selectors) Merge(overrides map[string]string) Selectors {
	out := make(Selectors, len(s)+len(overrides))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range overrides {
		out[Locator(k)] = v
	}
	return out
}

// Selector returns the CSS selector for loc.
func (s Selectors) Selector(loc Locator) (string, error) {
	sel, ok := s[loc]
	if !ok || sel == "" {
		return "", fmt.Errorf("ui: no selector for locator %q", loc)
	}
	return sel, nil
}

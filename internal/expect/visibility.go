package expect

import (
	"dashcheck/internal/dataset"
	"dashcheck/internal/ui"
)

// Mode is the rendering context a pass runs in.
type Mode struct {
	Notebook         bool // notebook widget rather than the interactive dashboard
	Vision           bool // image-based task; cell and chart checks are skipped
	IncludeNewCohort bool // the fixture's new cohort has been created
}

// Presence is the required state of an optional element.
type Presence int

const (
	Unchecked Presence = iota
	MustExist
	MustNotExist
)

func (p Presence) String() string {
	switch p {
	case MustExist:
		return "must-exist"
	case MustNotExist:
		return "must-not-exist"
	default:
		return "unchecked"
	}
}

// MarshalText renders the presence as its string form.
func (p Presence) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// DefaultVisibleChart returns the chart the page shows before any user
// interaction.
func DefaultVisibleChart(isRegression, isBinary bool) ui.ChartKind {
	switch {
	case isRegression:
		return ui.ChartRegressionDistribution
	case isBinary:
		return ui.ChartMetric
	default:
		return ui.ChartConfusionMatrix
	}
}

// HeatmapTogglePresence decides whether the heatmap color toggle is rendered.
// It needs more than one cohort and is never offered for object detection;
// otherwise it exists only in notebook mode. Outside notebook mode with
// several cohorts it is not asserted either way.
func HeatmapTogglePresence(d *dataset.Descriptor, mode Mode) Presence {
	if len(ComposeActiveCohorts(d, mode.IncludeNewCohort)) <= 1 || d.IsObjectDetection {
		return MustNotExist
	}
	if mode.Notebook {
		return MustExist
	}
	return Unchecked
}

// AlwaysAbsent lists the elements that belong to the feature-based
// disaggregated analysis, which is never active in the dataset cohorts view.
func AlwaysAbsent() []ui.Locator {
	return []ui.Locator{
		ui.FeatureSelection,
		ui.FeatureConfigurationActionButton,
		ui.DisaggregatedAnalysisTable,
		ui.DisaggregatedAnalysisBaseDisclaimer,
		ui.DisaggregatedAnalysisBaseWarning,
	}
}

// RequiredElementPresence returns the required state of every element the
// dataset cohorts view makes a claim about.
func RequiredElementPresence(d *dataset.Descriptor, mode Mode) map[ui.Locator]Presence {
	out := map[ui.Locator]Presence{
		ui.DatasetCohortStatsTable:    MustExist,
		ui.HeatmapVisualDisplayToggle: HeatmapTogglePresence(d, mode),
	}
	for _, loc := range AlwaysAbsent() {
		out[loc] = MustNotExist
	}
	return out
}

// ChecksCells reports whether heatmap cell content is compared in mode.
func ChecksCells(mode Mode) bool {
	return mode.Notebook && !mode.Vision
}

// ChecksCharts reports whether default-chart visibility is compared in mode.
func ChecksCharts(mode Mode) bool {
	return !mode.Vision
}

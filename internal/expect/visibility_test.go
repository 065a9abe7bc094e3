package expect

import (
	"testing"

	"dashcheck/internal/dataset"
	"dashcheck/internal/ui"
)

func TestDefaultVisibleChart(t *testing.T) {
	tests := []struct {
		regression, binary bool
		want               ui.ChartKind
	}{
		{false, true, ui.ChartMetric},
		{false, false, ui.ChartConfusionMatrix},
		{true, false, ui.ChartRegressionDistribution},
		{true, true, ui.ChartRegressionDistribution},
	}
	for _, tt := range tests {
		if got := DefaultVisibleChart(tt.regression, tt.binary); got != tt.want {
			t.Errorf("DefaultVisibleChart(%v, %v) = %q, want %q", tt.regression, tt.binary, got, tt.want)
		}
	}
}

func withCohorts(d dataset.Descriptor, n int, withNew bool) *dataset.Descriptor {
	for i := 0; i < n; i++ {
		d.ModelOverview.InitialCohorts = append(d.ModelOverview.InitialCohorts, dataset.Cohort{Name: string(rune('A' + i))})
	}
	if withNew {
		d.ModelOverview.NewCohort = &dataset.Cohort{Name: "New"}
	}
	return &d
}

func TestHeatmapTogglePresence(t *testing.T) {
	tests := []struct {
		name string
		d    *dataset.Descriptor
		mode Mode
		want Presence
	}{
		{"object detection single cohort notebook", withCohorts(dataset.Descriptor{IsObjectDetection: true}, 1, false), Mode{Notebook: true}, MustNotExist},
		{"object detection single cohort interactive", withCohorts(dataset.Descriptor{IsObjectDetection: true}, 1, false), Mode{}, MustNotExist},
		{"object detection many cohorts", withCohorts(dataset.Descriptor{IsObjectDetection: true}, 3, false), Mode{Notebook: true}, MustNotExist},
		{"binary single cohort", withCohorts(dataset.Descriptor{IsBinary: true}, 1, true), Mode{Notebook: true}, MustNotExist},
		{"binary single cohort plus new", withCohorts(dataset.Descriptor{IsBinary: true}, 1, true), Mode{Notebook: true, IncludeNewCohort: true}, MustExist},
		{"new flag without new cohort", withCohorts(dataset.Descriptor{IsBinary: true}, 1, false), Mode{Notebook: true, IncludeNewCohort: true}, MustNotExist},
		{"regression two cohorts notebook", withCohorts(dataset.Descriptor{IsRegression: true}, 2, false), Mode{Notebook: true}, MustExist},
		{"regression two cohorts interactive", withCohorts(dataset.Descriptor{IsRegression: true}, 2, false), Mode{}, Unchecked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeatmapTogglePresence(tt.d, tt.mode); got != tt.want {
				t.Errorf("HeatmapTogglePresence = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequiredElementPresence(t *testing.T) {
	d := withCohorts(dataset.Descriptor{IsBinary: true}, 2, false)
	got := RequiredElementPresence(d, Mode{Notebook: true})
	for _, loc := range AlwaysAbsent() {
		if got[loc] != MustNotExist {
			t.Errorf("%s: %v, want must-not-exist", loc, got[loc])
		}
	}
	if got[ui.DatasetCohortStatsTable] != MustExist {
		t.Errorf("stats table: %v, want must-exist", got[ui.DatasetCohortStatsTable])
	}
	if got[ui.HeatmapVisualDisplayToggle] != MustExist {
		t.Errorf("toggle: %v, want must-exist", got[ui.HeatmapVisualDisplayToggle])
	}
}

func TestResolve_VisionSkipsChart(t *testing.T) {
	d, err := dataset.Load("fridge-multilabel")
	if err != nil {
		t.Fatal(err)
	}
	e := Resolve(d, Mode{Notebook: true, Vision: true, IncludeNewCohort: true})
	if e.DefaultChart != "" {
		t.Errorf("DefaultChart = %q, want empty for vision", e.DefaultChart)
	}
	if e.CellCount != 2*3 || len(e.Content) != e.CellCount {
		t.Errorf("CellCount = %d, len(Content) = %d, want 6", e.CellCount, len(e.Content))
	}
	if e.Task != dataset.TaskMultiLabel {
		t.Errorf("Task = %q", e.Task)
	}
}

func TestChecks(t *testing.T) {
	if ChecksCells(Mode{}) {
		t.Error("cells checked outside notebook mode")
	}
	if ChecksCells(Mode{Notebook: true, Vision: true}) {
		t.Error("cells checked for vision")
	}
	if !ChecksCells(Mode{Notebook: true}) {
		t.Error("cells not checked in notebook mode")
	}
	if ChecksCharts(Mode{Vision: true}) || !ChecksCharts(Mode{}) {
		t.Error("chart checks must be skipped for vision only")
	}
}

// Package verify runs the dataset cohorts view checks against a live page.
//
// A pass is strictly sequential: one driver call at a time, and the first
// failing assertion ends the pass with an *AssertionMismatch.
package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dashcheck/internal/dataset"
	"dashcheck/internal/expect"
	"dashcheck/internal/logging"
	"dashcheck/internal/ui"
)

// Config controls how a Verifier compares the page.
type Config struct {
	Notebook bool
	// Vision forces vision mode for every descriptor. Descriptors flagged
	// isVision are verified in vision mode regardless.
	Vision bool

	// StrictCellOrder compares heatmap cells position by position instead of
	// by set membership. Only valid for renderers that keep assembly order.
	StrictCellOrder bool

	// NormalizeCell is applied to rendered cell text before comparison.
	// Defaults to expect.TrimRenderArtifact.
	NormalizeCell func(string) string

	// MetricChart is invoked when the default chart is the metric chart.
	// Defaults to CohortLabelChecker.
	MetricChart MetricChartChecker

	Observer Observer
	Logger   *slog.Logger
}

// Verifier checks the model-overview page through a ui.Driver.
type Verifier struct {
	drv ui.Driver
	cfg Config
	log *slog.Logger
}

// New returns a Verifier for drv.
func New(drv ui.Driver, cfg Config) *Verifier {
	if cfg.NormalizeCell == nil {
		cfg.NormalizeCell = expect.TrimRenderArtifact
	}
	if cfg.MetricChart == nil {
		cfg.MetricChart = CohortLabelChecker{}
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	log := cfg.Logger
	if log == nil {
		log = logging.New("verify")
	}
	return &Verifier{drv: drv, cfg: cfg, log: log}
}

// VerifyDatasetCohortsView is a one-shot DatasetCohortsView with default settings.
func VerifyDatasetCohortsView(ctx context.Context, drv ui.Driver, d *dataset.Descriptor, mode expect.Mode) error {
	v := New(drv, Config{Notebook: mode.Notebook, Vision: mode.Vision})
	return v.DatasetCohortsView(ctx, d, mode.IncludeNewCohort)
}

func (v *Verifier) mode(d *dataset.Descriptor, includeNew bool) expect.Mode {
	return expect.Mode{Notebook: v.cfg.Notebook, Vision: v.cfg.Vision || d.IsVision, IncludeNewCohort: includeNew}
}

// DatasetCohortsView verifies the dataset cohorts view of the model-overview
// page for d. includeNew selects whether the fixture's new cohort is expected
// to be present.
func (v *Verifier) DatasetCohortsView(ctx context.Context, d *dataset.Descriptor, includeNew bool) (err error) {
	start := time.Now()
	log := v.log.With("dataset", d.Name, "new_cohort", includeNew)
	defer func() {
		v.cfg.Observer.Pass(d.Name, err, time.Since(start).Seconds())
		if err != nil {
			log.Warn("dataset cohorts view failed", "error", err)
			return
		}
		log.Info("dataset cohorts view verified", "elapsed", time.Since(start))
	}()

	mode := v.mode(d, includeNew)

	for _, loc := range []ui.Locator{ui.FeatureSelection, ui.FeatureConfigurationActionButton} {
		if err := v.assertAbsent(ctx, "feature-controls-absent", loc); err != nil {
			return err
		}
	}

	if err := v.assertPresent(ctx, "cohort-stats-table", ui.DatasetCohortStatsTable); err != nil {
		return err
	}

	if mode.Notebook {
		if err := v.heatmapToggle(ctx, expect.HeatmapTogglePresence(d, mode)); err != nil {
			return err
		}
	}

	for _, loc := range []ui.Locator{
		ui.DisaggregatedAnalysisTable,
		ui.DisaggregatedAnalysisBaseDisclaimer,
		ui.DisaggregatedAnalysisBaseWarning,
	} {
		if err := v.assertAbsent(ctx, "disaggregated-analysis-absent", loc); err != nil {
			return err
		}
	}

	if name, ok := d.FirstCohortName(); ok {
		if err := v.assertTextIncludes(ctx, "y-axis-first-cohort", ui.TableYAxisGrid, name); err != nil {
			return err
		}
	} else {
		log.Warn("fixture has no initial cohorts, skipping y-axis label check")
	}

	e := expect.Resolve(d, mode)
	log.Debug("resolved expectation", "task", e.Task, "metrics", len(e.MetricOrder), "cohorts", len(e.Cohorts))

	if mode.Vision {
		return nil
	}
	if expect.ChecksCells(mode) {
		if err := v.heatmapCells(ctx, e); err != nil {
			return err
		}
	}
	return v.defaultChart(ctx, d, e, mode)
}

// EnsureNewCohortsShowUpInCharts switches to the dataset cohorts view,
// verifies it, creates the fixture's new cohort and verifies again with the
// new cohort expected.
func (v *Verifier) EnsureNewCohortsShowUpInCharts(ctx context.Context, creator ui.CohortCreator, d *dataset.Descriptor) error {
	if err := v.step("dataset-cohort-view", func() error {
		if err := v.drv.Click(ctx, ui.DatasetCohortViewButton); err != nil {
			return mismatch("dataset-cohort-view", ui.DatasetCohortViewButton, "clickable", "not clickable", err)
		}
		return nil
	}); err != nil {
		return err
	}

	if err := v.DatasetCohortsView(ctx, d, false); err != nil {
		return err
	}

	nc := d.ModelOverview.NewCohort
	if nc == nil {
		return fmt.Errorf("%w: dataset %q has no newCohort", ErrMissingFixture, d.Name)
	}
	v.log.Info("creating cohort", "dataset", d.Name, "cohort", nc.Name)
	if err := v.step("create-cohort", func() error {
		if err := creator.CreateCohort(ctx, nc.Name); err != nil {
			return mismatch("create-cohort", ui.CreateCohortButton, "cohort "+nc.Name+" created", "not created", err)
		}
		return nil
	}); err != nil {
		return err
	}

	return v.DatasetCohortsView(ctx, d, true)
}

// step runs one assertion and reports it to the observer.
func (v *Verifier) step(name string, fn func() error) error {
	v.log.Debug("step", "name", name)
	err := fn()
	v.cfg.Observer.Assertion(name, err)
	return err
}

func (v *Verifier) assertPresent(ctx context.Context, step string, loc ui.Locator) error {
	return v.step(step, func() error {
		if err := v.drv.WaitExists(ctx, loc); err != nil {
			return mismatch(step, loc, "present", "absent", err)
		}
		return nil
	})
}

func (v *Verifier) assertAbsent(ctx context.Context, step string, loc ui.Locator) error {
	return v.step(step, func() error {
		if err := v.drv.WaitNotExists(ctx, loc); err != nil {
			return mismatch(step, loc, "absent", "present", err)
		}
		return nil
	})
}

func (v *Verifier) assertTextIncludes(ctx context.Context, step string, loc ui.Locator, want string) error {
	return v.step(step, func() error {
		text, err := v.drv.Text(ctx, loc)
		if err != nil {
			return mismatch(step, loc, fmt.Sprintf("text including %q", want), "no text", err)
		}
		if !strings.Contains(text, want) {
			return mismatch(step, loc, fmt.Sprintf("text including %q", want), fmt.Sprintf("%q", text), nil)
		}
		return nil
	})
}

func (v *Verifier) heatmapCells(ctx context.Context, e expect.Expectation) error {
	const step = "heatmap-cells"
	return v.step(step, func() error {
		want := fmt.Sprintf("%d cells", e.CellCount)
		werr := v.drv.WaitCount(ctx, ui.HeatmapCells, e.CellCount)
		if werr != nil && !errors.Is(werr, ui.ErrUnmet) {
			return mismatch(step, ui.HeatmapCells, want, "no cells", werr)
		}
		cells, err := v.drv.Texts(ctx, ui.HeatmapCells)
		if err != nil {
			return mismatch(step, ui.HeatmapCells, want, "no cells", err)
		}
		if len(cells) != e.CellCount {
			return mismatch(step, ui.HeatmapCells, want, fmt.Sprintf("%d cells", len(cells)), werr)
		}
		match := expect.MatchCellsInSet
		if v.cfg.StrictCellOrder {
			match = expect.MatchCellsInOrder
		}
		if m := match(cells, e.Content, v.cfg.NormalizeCell); m != nil {
			return mismatch(step, ui.HeatmapCells, m.Expected, fmt.Sprintf("%q at cell %d", m.Rendered, m.Index), cellDiff(m))
		}
		return nil
	})
}

func cellDiff(m *expect.CellMismatch) error {
	if m.Diff == "" {
		return nil
	}
	return errors.New("cell diff (-want +got):\n" + m.Diff)
}

func (v *Verifier) defaultChart(ctx context.Context, d *dataset.Descriptor, e expect.Expectation, mode expect.Mode) error {
	chart := e.DefaultChart
	if err := v.assertPresent(ctx, "default-chart", chart.Locator()); err != nil {
		return err
	}
	for _, other := range ui.AllCharts() {
		if other == chart {
			continue
		}
		if err := v.assertAbsent(ctx, "hidden-chart", other.Locator()); err != nil {
			return err
		}
	}
	if chart != ui.ChartMetric {
		return nil
	}
	return v.step("metric-chart", func() error {
		err := v.cfg.MetricChart.CheckMetricChart(ctx, v.drv, d, e, mode)
		if err == nil {
			return nil
		}
		var am *AssertionMismatch
		if errors.As(err, &am) {
			return err
		}
		return mismatch("metric-chart", ui.MetricChart, "correct metric chart", "check failed", err)
	})
}

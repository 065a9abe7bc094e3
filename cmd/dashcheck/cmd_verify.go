package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dashcheck/internal/browser"
	"dashcheck/internal/config"
	"dashcheck/internal/dataset"
	"dashcheck/internal/format"
	"dashcheck/internal/logging"
	"dashcheck/internal/metrics"
	"dashcheck/internal/ui"
	"dashcheck/internal/verify"
)

var verifyFlags struct {
	run           runFlags
	all           bool
	newCohortFlow bool
	markdown      bool
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [dataset...]",
		Short: "Verify the dataset cohorts view of a running dashboard",
		Long: `Opens the dashboard page of every named dataset in a browser tab and checks
it against the expectation computed from the descriptor. Datasets are fixture
names or descriptor file paths. Every dataset runs even if an earlier one fails;
the command exits non-zero if any failed.`,
		RunE: runVerify,
	}
	f := cmd.Flags()
	verifyFlags.run.register(cmd)
	f.BoolVar(&verifyFlags.all, "all", false, "Verify every bundled fixture")
	f.BoolVar(&verifyFlags.newCohortFlow, "new-cohort-flow", false, "Create each fixture's new cohort and verify before and after")
	f.BoolVar(&verifyFlags.markdown, "markdown", false, "Render the result table as Markdown")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := verifyFlags.run.settings(cmd, nil)
	if err != nil {
		return err
	}
	if err := initLogging(cfg); err != nil {
		return err
	}
	cases, err := verifyCases(args, verifyFlags.all, verifyFlags.newCohortFlow)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	b, err := browser.Launch(ctx, browser.Options{Headless: cfg.Headless})
	if err != nil {
		return err
	}
	defer b.Close()

	rec := metrics.NewRecorder()
	results := verify.RunSuite(ctx, tabOpener(b, cfg), verifyConfig(cfg, rec), cases, cfg.Parallel)

	mode := format.ASCII
	if verifyFlags.markdown {
		mode = format.Markdown
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.ResultsTable(mode, results))

	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	if failed := verify.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d datasets failed verification", len(failed), len(results))
	}
	return nil
}

func initLogging(cfg config.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.LogFormat)
	return nil
}

// verifyCases loads and validates the named descriptors, or every fixture
// when all is set.
func verifyCases(refs []string, all, newCohortFlow bool) ([]verify.Case, error) {
	if all {
		refs = append(refs, dataset.List()...)
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("no datasets given; name some or pass --all")
	}
	cases := make([]verify.Case, 0, len(refs))
	for _, ref := range refs {
		d, err := dataset.Resolve(ref)
		if err != nil {
			return nil, err
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if newCohortFlow && d.ModelOverview.NewCohort == nil {
			return nil, fmt.Errorf("%s: %w", d.Name, verify.ErrMissingFixture)
		}
		cases = append(cases, verify.Case{Descriptor: d, NewCohortFlow: newCohortFlow})
	}
	return cases, nil
}

func verifyConfig(cfg config.Config, obs verify.Observer) verify.Config {
	return verify.Config{
		Notebook:        cfg.Notebook,
		StrictCellOrder: cfg.StrictCells,
		Observer:        obs,
	}
}

// tabOpener opens one browser tab per case at the dataset's page.
func tabOpener(b *browser.Browser, cfg config.Config) verify.Opener {
	drv := browser.NewDriver(ui.DefaultSelectors().Merge(cfg.Selectors), cfg.Timeout)
	return func(_ context.Context, c verify.Case) (*verify.Session, error) {
		tab, closeTab, err := b.NewTab(cfg.URLFor(c.Descriptor.Name))
		if err != nil {
			return nil, err
		}
		return &verify.Session{Ctx: tab, Driver: drv, Creator: drv, Close: closeTab}, nil
	}
}

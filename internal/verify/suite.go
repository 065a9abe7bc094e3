package verify

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"dashcheck/internal/dataset"
	"dashcheck/internal/ui"
)

// Case is one independent scenario of a suite.
type Case struct {
	Descriptor *dataset.Descriptor
	// NewCohortFlow runs EnsureNewCohortsShowUpInCharts instead of a single
	// DatasetCohortsView pass.
	NewCohortFlow bool
}

// Session is an isolated page a case runs against. Ctx is the context the
// driver expects its calls to carry (for a browser, the tab context).
type Session struct {
	Ctx     context.Context
	Driver  ui.Driver
	Creator ui.CohortCreator
	Close   func()
}

// Opener prepares a fresh session for c.
type Opener func(ctx context.Context, c Case) (*Session, error)

// Result is the outcome of one case.
type Result struct {
	Dataset  string
	Err      error
	Duration time.Duration
}

// RunSuite runs cases with at most parallel sessions open at once. Cases are
// independent: a failing case does not stop the others. Results are returned
// in case order.
func RunSuite(ctx context.Context, open Opener, cfg Config, cases []Case, parallel int) []Result {
	if parallel < 1 {
		parallel = 1
	}
	results := make([]Result, len(cases))

	var g errgroup.Group
	g.SetLimit(parallel)
	for i, c := range cases {
		g.Go(func() error {
			start := time.Now()
			err := runCase(ctx, open, cfg, c)
			results[i] = Result{Dataset: c.Descriptor.Name, Err: err, Duration: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func runCase(ctx context.Context, open Opener, cfg Config, c Case) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sess, err := open(ctx, c)
	if err != nil {
		return fmt.Errorf("open session for %q: %w", c.Descriptor.Name, err)
	}
	if sess.Close != nil {
		defer sess.Close()
	}

	v := New(sess.Driver, cfg)
	if c.NewCohortFlow {
		if sess.Creator == nil {
			return fmt.Errorf("case %q: new-cohort flow needs a cohort creator", c.Descriptor.Name)
		}
		return v.EnsureNewCohortsShowUpInCharts(sess.Ctx, sess.Creator, c.Descriptor)
	}
	return v.DatasetCohortsView(sess.Ctx, c.Descriptor, false)
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

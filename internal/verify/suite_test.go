package verify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"dashcheck/internal/dataset"
	"dashcheck/internal/expect"
	"dashcheck/internal/ui"
	"dashcheck/internal/ui/uitest"
)

func TestRunSuite(t *testing.T) {
	var names []string
	var cases []Case
	for _, name := range []string{"adult-census-income", "boston-housing", "iris"} {
		names = append(names, name)
		cases = append(cases, Case{Descriptor: load(t, name)})
	}
	cases = append(cases, Case{Descriptor: regression(), NewCohortFlow: true})

	var open, closed atomic.Int32
	opener := func(ctx context.Context, c Case) (*Session, error) {
		open.Add(1)
		p := populate(uitest.NewPage(), c.Descriptor, expect.Mode{})
		if c.Descriptor.Name == "iris" {
			p.Show(ui.DisaggregatedAnalysisTable)
		}
		p.OnCreateCohort = func(p *uitest.Page, _ string) {
			populate(p, c.Descriptor, expect.Mode{IncludeNewCohort: true})
		}
		return &Session{Ctx: ctx, Driver: p, Creator: p, Close: func() { closed.Add(1) }}, nil
	}

	results := RunSuite(context.Background(), opener, Config{Logger: quiet}, cases, 2)

	if len(results) != len(cases) {
		t.Fatalf("got %d results, want %d", len(results), len(cases))
	}
	for i, name := range append(names, "regression") {
		if results[i].Dataset != name {
			t.Errorf("results[%d].Dataset = %q, want %q", i, results[i].Dataset, name)
		}
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Dataset != "iris" {
		t.Fatalf("failed = %+v", failed)
	}
	var m *AssertionMismatch
	if !errors.As(failed[0].Err, &m) || m.Step != "disaggregated-analysis-absent" {
		t.Errorf("iris error = %v", failed[0].Err)
	}
	if open.Load() != 4 || closed.Load() != 4 {
		t.Errorf("opened %d, closed %d sessions", open.Load(), closed.Load())
	}
}

func TestRunSuite_OpenError(t *testing.T) {
	boom := errors.New("no browser")
	opener := func(context.Context, Case) (*Session, error) { return nil, boom }
	results := RunSuite(context.Background(), opener, Config{Logger: quiet}, []Case{{Descriptor: regression()}}, 0)
	if !errors.Is(results[0].Err, boom) {
		t.Errorf("err = %v", results[0].Err)
	}
}

func TestRunSuite_NewCohortFlowNeedsCreator(t *testing.T) {
	opener := func(ctx context.Context, c Case) (*Session, error) {
		return &Session{Ctx: ctx, Driver: populate(uitest.NewPage(), c.Descriptor, expect.Mode{})}, nil
	}
	results := RunSuite(context.Background(), opener, Config{Logger: quiet}, []Case{{Descriptor: regression(), NewCohortFlow: true}}, 1)
	if results[0].Err == nil {
		t.Fatal("expected error without a cohort creator")
	}
}

func TestRunSuite_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opener := func(context.Context, Case) (*Session, error) {
		t.Error("opener called after cancel")
		return nil, nil
	}
	results := RunSuite(ctx, opener, Config{Logger: quiet}, []Case{{Descriptor: &dataset.Descriptor{Name: "x"}}}, 1)
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("err = %v", results[0].Err)
	}
}

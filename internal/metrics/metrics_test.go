package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Counts(t *testing.T) {
	r := NewRecorder()
	r.Assertion("cohort-stats-table", nil)
	r.Assertion("cohort-stats-table", nil)
	r.Assertion("heatmap-cells", errors.New("mismatch"))
	r.Pass("iris", nil, 1.5)
	r.Pass("iris", errors.New("mismatch"), 0.5)

	if got := testutil.ToFloat64(r.assertions.WithLabelValues("cohort-stats-table", "pass")); got != 2 {
		t.Errorf("stats table passes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.assertions.WithLabelValues("heatmap-cells", "fail")); got != 1 {
		t.Errorf("heatmap failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.passes.WithLabelValues("iris", "fail")); got != 1 {
		t.Errorf("iris failed passes = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(r.duration); n != 1 {
		t.Errorf("duration series = %d, want 1", n)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Pass("adult-census-income", nil, 2)

	path := filepath.Join(t.TempDir(), "dashcheck.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `dashcheck_passes_total{dataset="adult-census-income",outcome="pass"} 1`) {
		t.Errorf("textfile missing pass counter:\n%s", data)
	}
}

package config

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sethvargo/go-envconfig"
)

func testdataPath(name string) string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "testdata", name)
}

func TestLoadFromPath_YAML(t *testing.T) {
	cfg, err := LoadFromPath(testdataPath("run.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	want := Default()
	want.BaseURL = "http://dashboard.local:5000"
	want.PathTemplate = "/model-assessment/{dataset}"
	want.Headless = false
	want.Timeout = 45 * time.Second
	want.Notebook = true
	want.Parallel = 3
	want.Selectors = map[string]string{"ModelOverviewHeatmapCells": "#stats .cell-label"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	cfg, err := LoadFromPath(testdataPath("run.json"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:8704" || cfg.Timeout != 5*time.Second {
		t.Errorf("got %+v", cfg)
	}
	if !cfg.StrictCells || cfg.MetricsFile != "/tmp/dashcheck.prom" {
		t.Errorf("got %+v", cfg)
	}
	if !cfg.Headless || cfg.PathTemplate != "/{dataset}" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.Parallel = 3
	l := envconfig.MapLookuper(map[string]string{
		"DASHCHECK_BASE_URL": "http://ci-dashboard:9000",
		"DASHCHECK_TIMEOUT":  "1m",
		"DASHCHECK_HEADLESS": "false",
		"BASE_URL":           "http://unprefixed",
	})
	if err := ApplyEnv(context.Background(), &cfg, l); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.BaseURL != "http://ci-dashboard:9000" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != time.Minute || cfg.Headless {
		t.Errorf("Timeout = %s, Headless = %v", cfg.Timeout, cfg.Headless)
	}
	if cfg.Parallel != 3 || cfg.LogLevel != "info" {
		t.Errorf("unset variables changed fields: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
	cfg := Default()
	cfg.BaseURL = "dashboard"
	cfg.Timeout = 0
	cfg.Parallel = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"not an absolute URL", "timeout must be positive", "parallel must be at least 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestURLFor(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "http://localhost:8000/"
	cfg.PathTemplate = "/widget/{dataset}/overview"
	if got := cfg.URLFor("adult census"); got != "http://localhost:8000/widget/adult%20census/overview" {
		t.Errorf("URLFor = %q", got)
	}
}

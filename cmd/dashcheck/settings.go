package main

import (
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"dashcheck/internal/config"
)

// runFlags are the flags shared by commands that talk to a dashboard.
type runFlags struct {
	configPath  string
	baseURL     string
	path        string
	headless    bool
	timeout     time.Duration
	notebook    bool
	strictCells bool
	parallel    int
	metricsFile string
}

func (r *runFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	def := config.Default()
	f.StringVar(&r.configPath, "config", "", "Run config file (YAML or JSON)")
	f.StringVar(&r.baseURL, "url", def.BaseURL, "Dashboard base URL")
	f.StringVar(&r.path, "path", def.PathTemplate, "Page path; {dataset} is replaced with the dataset name")
	f.BoolVar(&r.headless, "headless", def.Headless, "Run the browser headless")
	f.DurationVar(&r.timeout, "timeout", def.Timeout, "Per-query wait timeout")
	f.BoolVar(&r.notebook, "notebook", def.Notebook, "The dashboard is rendered inside a notebook")
	f.BoolVar(&r.strictCells, "strict-cells", def.StrictCells, "Compare heatmap cells in order instead of as a set")
	f.IntVar(&r.parallel, "parallel", def.Parallel, "Datasets verified at once, one browser tab each")
	f.StringVar(&r.metricsFile, "metrics-file", def.MetricsFile, "Write Prometheus metrics to this file after the run")
}

// settings layers the run config: defaults, then the config file, then
// DASHCHECK_* variables, then flags the user set explicitly.
func (r *runFlags) settings(cmd *cobra.Command, env envconfig.Lookuper) (config.Config, error) {
	cfg := config.Default()
	if r.configPath != "" {
		var err error
		if cfg, err = config.LoadFromPath(r.configPath); err != nil {
			return cfg, err
		}
	}
	if err := config.ApplyEnv(cmd.Context(), &cfg, env); err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("url") {
		cfg.BaseURL = r.baseURL
	}
	if f.Changed("path") {
		cfg.PathTemplate = r.path
	}
	if f.Changed("headless") {
		cfg.Headless = r.headless
	}
	if f.Changed("timeout") {
		cfg.Timeout = r.timeout
	}
	if f.Changed("notebook") {
		cfg.Notebook = r.notebook
	}
	if f.Changed("strict-cells") {
		cfg.StrictCells = r.strictCells
	}
	if f.Changed("parallel") {
		cfg.Parallel = r.parallel
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = r.metricsFile
	}
	if root := cmd.Root().PersistentFlags(); root.Changed("log-level") {
		cfg.LogLevel = rootFlags.logLevel
	}
	if root := cmd.Root().PersistentFlags(); root.Changed("log-format") {
		cfg.LogFormat = rootFlags.logFormat
	}
	return cfg, cfg.Validate()
}

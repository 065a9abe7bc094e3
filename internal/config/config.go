// Package config holds the settings of a verification run: where the
// dashboard is served, how the browser is driven and how strictly the page
// is compared. Settings come from a YAML or JSON file, then DASHCHECK_*
// environment variables, then command-line flags.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DASHCHECK_"

// Config is one run's settings.
type Config struct {
	BaseURL      string        `json:"base_url" yaml:"base_url" env:"BASE_URL"`
	PathTemplate string        `json:"path" yaml:"path" env:"PATH_TEMPLATE"` // "{dataset}" is replaced with the dataset name
	Headless     bool          `json:"headless" yaml:"headless" env:"HEADLESS"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout" env:"TIMEOUT"` // per driver query
	Notebook     bool          `json:"notebook" yaml:"notebook" env:"NOTEBOOK"`
	StrictCells  bool          `json:"strict_cells" yaml:"strict_cells" env:"STRICT_CELLS"`
	Parallel     int           `json:"parallel" yaml:"parallel" env:"PARALLEL"`
	MetricsFile  string        `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty" env:"METRICS_FILE"`
	LogLevel     string        `json:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat    string        `json:"log_format" yaml:"log_format" env:"LOG_FORMAT"`

	// Selectors overrides the CSS selector of individual locators.
	Selectors map[string]string `json:"selectors,omitempty" yaml:"selectors,omitempty"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		BaseURL:      "http://localhost:8000",
		PathTemplate: "/{dataset}",
		Headless:     true,
		Timeout:      20 * time.Second,
		Parallel:     1,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// LoadFromPath reads a config file over Default. YAML and JSON are both
// accepted; durations are written as strings such as "30s".
func LoadFromPath(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data onto cfg. Fields the document omits keep their value.
// JSON documents go through the YAML decoder, which accepts them as flow
// mappings and understands duration strings.
func Parse(data []byte, cfg *Config) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyEnv overlays DASHCHECK_* variables found by l onto cfg. A nil l reads
// the process environment.
func ApplyEnv(ctx context.Context, cfg *Config, l envconfig.Lookuper) error {
	if l == nil {
		l = envconfig.OsLookuper()
	}
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:           cfg,
		Lookuper:         envconfig.PrefixLookuper(EnvPrefix, l),
		DefaultOverwrite: true,
	})
	if err != nil {
		return fmt.Errorf("config from environment: %w", err)
	}
	return nil
}

// Validate rejects settings a run cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.BaseURL == "" {
		errs = append(errs, errors.New("base_url is required"))
	} else if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("base_url %q is not an absolute URL", c.BaseURL))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Parallel < 1 {
		errs = append(errs, fmt.Errorf("parallel must be at least 1, got %d", c.Parallel))
	}
	return errors.Join(errs...)
}

// URLFor returns the page URL of a dataset.
func (c Config) URLFor(dataset string) string {
	path := strings.ReplaceAll(c.PathTemplate, "{dataset}", url.PathEscape(dataset))
	return strings.TrimSuffix(c.BaseURL, "/") + path
}

// Package config loads the optional tempcast settings file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/tempcast/errs"
)

// DefaultPlotPath is where the comparison plot is written unless overridden.
const DefaultPlotPath = "./output/forecast_plot.png"

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Progress display modes.
const (
	ProgressAuto  = "auto"  // spinner on a terminal, log lines otherwise
	ProgressPlain = "plain" // always log lines
	ProgressNone  = "none"
)

// Config is the tempcast settings file.
type Config struct {
	PlotPath  string `yaml:"plot_path"`  // Output PNG for the comparison plot
	LogLevel  string `yaml:"log_level"`  // zerolog level name
	LogFormat string `yaml:"log_format"` // console or json
	Progress  string `yaml:"progress"`   // auto, plain or none
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		PlotPath:  DefaultPlotPath,
		LogLevel:  "info",
		LogFormat: FormatConsole,
		Progress:  ProgressAuto,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Config(op, "failed to read config", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.Config(op, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	const op = "config.Validate"

	if strings.TrimSpace(c.PlotPath) == "" {
		return errs.Config(op, "plot_path cannot be empty", nil)
	}
	if _, err := c.Level(); err != nil {
		return errs.Config(op, fmt.Sprintf("invalid log_level %q", c.LogLevel), err)
	}

	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return errs.Config(op, fmt.Sprintf("log_format must be %q or %q, got %q", FormatConsole, FormatJSON, c.LogFormat), nil)
	}

	switch c.Progress {
	case ProgressAuto, ProgressPlain, ProgressNone:
	default:
		return errs.Config(op, fmt.Sprintf("progress must be auto, plain or none, got %q", c.Progress), nil)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

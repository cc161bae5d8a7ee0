package app

import (
	"errors"
	"fmt"
)

// Output formats Run can emit on the results writer.
const (
	OutputSummary = "summary"
	OutputJSON    = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BuildDir   string // root of the build tree the built-in catalog points into
	Modules    string // inline JSON or a manifest path with extra modules
	ModulesDir string // directory of extra module manifests

	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg, fills in defaults, and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildDir == "" {
		return nil, errors.New("BuildDir is a required configuration field and cannot be empty")
	}

	if cfg.Output == "" {
		cfg.Output = OutputSummary
	}
	switch cfg.Output {
	case OutputSummary, OutputJSON:
		// valid
	default:
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q",
			cfg.Output, OutputSummary, OutputJSON)
	}

	return &cfg, nil
}

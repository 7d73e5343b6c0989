package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	OptionsPath string // HCL options file; empty composes with pure defaults.
	OutputPath  string // Destination for the YAML graph; empty writes to stdout.

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config value.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q: expected 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

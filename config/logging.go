package config

import (
	"fmt"
	"strings"
)

// LoggingConfig selects the diagnostic log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error. Vehicle diagnostics
	// are written at debug level.
	Level string `json:"level"`
	// Format is "console" or "json".
	Format string `json:"format"`
	// Events additionally logs every vehicle event as a structured record.
	Events bool `json:"events"`
}

// Validate checks the level and format names.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %s", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}

// MetricsConfig controls the in-process event counters.
type MetricsConfig struct {
	// Summary prints the counters after the demo run.
	Summary bool `json:"summary"`
}

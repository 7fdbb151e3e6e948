package app

import (
	"errors"
	"fmt"

	"github.com/swork/digraph-animator/internal/compat"
	"github.com/swork/digraph-animator/internal/source"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath    string // "-" reads standard input
	InputFormat  string
	OutputPath   string // empty writes to the app's output writer
	OutputFormat string

	// Summary prints counts instead of the rendered model.
	Summary bool
	// Trace logs a span per pipeline pass at debug level.
	Trace bool

	LogFormat string
	LogLevel  string

	// Rules are the version compatibility rules. Nil means the defaults.
	Rules compat.Rules
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if _, err := source.ParseFormat(cfg.InputFormat); err != nil {
		return nil, err
	}
	if _, err := source.ParseFormat(cfg.OutputFormat); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	if cfg.Rules == nil {
		cfg.Rules = compat.DefaultRules()
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

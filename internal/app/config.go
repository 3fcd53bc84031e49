package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LayoutPath string // hcl layout file

	LogFormat string
	LogLevel  string

	// Cycles limits how many render cycles Run performs. Zero means run
	// until the context is cancelled.
	Cycles int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LayoutPath == "" {
		return nil, errors.New("LayoutPath is a required configuration field and cannot be empty")
	}
	if cfg.Cycles < 0 {
		return nil, errors.New("Cycles cannot be negative")
	}
	return &cfg, nil
}

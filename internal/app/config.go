package app

import "errors"

// Config holds everything an App needs to run one scan.
type Config struct {
	// Roots are files or directories to scan for .conf files.
	Roots []string
	// ProfilePath optionally names an HCL scan profile that fills in any
	// field left unset here. Explicit values always win.
	ProfilePath string

	// RunID is the opaque identifier threaded onto every projected
	// record. Empty means generate one.
	RunID string
	// Format selects the record output encoding: "json" or "yaml".
	Format string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	// WorkerCount is the scan parallelism. Zero means pick a default at
	// runtime.
	WorkerCount int
}

// NewConfig validates cfg and returns it. Roots may be empty only when a
// profile is going to supply them.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Roots) == 0 && cfg.ProfilePath == "" {
		return nil, errors.New("at least one scan root or a profile is required")
	}
	return &cfg, nil
}

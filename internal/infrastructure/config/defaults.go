package config

import "time"

// Default production settings
const (
	DefaultBatchSize = 50
	DefaultInterval  = 10 * time.Second
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Production defaults
	if cfg.Production.BatchSize == 0 {
		cfg.Production.BatchSize = DefaultBatchSize
	}
	if cfg.Production.Interval == 0 {
		cfg.Production.Interval = DefaultInterval
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

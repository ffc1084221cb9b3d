package config

import "time"

// ProductionConfig holds the production run settings
type ProductionConfig struct {
	// Maximum doughnuts made per flavor on every tick
	BatchSize int `mapstructure:"batch_size" validate:"min=1"`

	// Time between ticks
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`

	// Optional PID file that keeps a single run per host
	PIDFile string `mapstructure:"pid_file"`
}

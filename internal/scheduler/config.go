package scheduler

import (
	"time"

	"github.com/smallbiznis/komisi/internal/config"
)

// Config controls scheduler intervals and timeouts.
type Config struct {
	RunInterval time.Duration
	RunTimeout  time.Duration
}

func DefaultConfig() Config {
	return Config{
		RunInterval: time.Minute,
		RunTimeout:  5 * time.Minute,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.RunInterval <= 0 {
		c.RunInterval = defaults.RunInterval
	}
	if c.RunTimeout <= 0 {
		c.RunTimeout = defaults.RunTimeout
	}
	return c
}

// ProvideConfig maps application configuration onto the scheduler.
func ProvideConfig(cfg config.Config) Config {
	return Config{
		RunInterval: cfg.Sync.Interval,
		RunTimeout:  cfg.Sync.Timeout,
	}.withDefaults()
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds settings read from the environment. Zero values mean
// "not set"; command-line flags win over them when given explicitly.
type EnvOverrides struct {
	ConfigPath string `env:"FALLING_CONFIG"`
	Seed       int64  `env:"FALLING_SEED"`
	UPS        int    `env:"FALLING_UPS"`
	SpawnMode  string `env:"FALLING_SPAWN_MODE"`
	Difficulty string `env:"FALLING_DIFFICULTY"`
	LogLevel   string `env:"FALLING_LOG_LEVEL"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return EnvOverrides{}, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// Apply copies the overrides that touch the game config into cfg.
func (o EnvOverrides) Apply(cfg *FallingConfig) {
	if o.UPS > 0 {
		cfg.Timing.UPS = o.UPS
	}
	if o.SpawnMode != "" {
		cfg.Spawn.Mode = SpawnMode(o.SpawnMode)
	}
}

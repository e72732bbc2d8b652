package config

import (
	_ "embed"
)

//go:embed defaults/falling.yaml
var defaultFallingYAML []byte

// DefaultFallingConfig returns the default falling configuration.
func DefaultFallingConfig() FallingConfig {
	return FallingConfig{
		Playfield: PlayfieldConfig{
			Width:  700,
			Height: 700,
		},
		Player: PlayerConfig{
			Size:         30,
			Speed:        500,
			BottomOffset: 10,
		},
		Spawn: SpawnConfig{
			Mode: SpawnWave,
			Stochastic: StochasticConfig{
				InitialChance:  1.0,
				ChanceStep:     0.001,
				SizeMin:        10,
				SizeMax:        50,
				SizeOffsetStep: 0.003,
				VelocityMin:    200,
				VelocityMax:    500,
			},
			Wave: WaveConfig{
				FallerSize:     30,
				FallerVelocity: 200,
				Gap:            200,
				Spread:         3,
			},
		},
		Timing: TimingConfig{
			UPS:       60,
			FixedStep: true,
			MaxStep:   0.25,
		},
		Input: InputConfig{
			ReleaseAfterMS: 500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFallingYAML
}

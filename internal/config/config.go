// Package config provides YAML-based game configuration loading and
// difficulty presets for the falling game.
package config

// FallingConfig contains all configuration for the falling game.
type FallingConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Timing    TimingConfig    `yaml:"timing"`
	Input     InputConfig     `yaml:"input"`
}

// PlayfieldConfig defines the simulated area in pixels.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player block.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`         // Pixels per second
	BottomOffset float64 `yaml:"bottom_offset"` // Gap between player and bottom edge
}

// SpawnMode selects which spawner feeds fallers into the session.
type SpawnMode string

const (
	SpawnStochastic SpawnMode = "stochastic"
	SpawnWave       SpawnMode = "wave"
)

// SpawnConfig selects a spawn mode and holds the parameters of both.
type SpawnConfig struct {
	Mode       SpawnMode        `yaml:"mode"`
	Stochastic StochasticConfig `yaml:"stochastic"`
	Wave       WaveConfig       `yaml:"wave"`
}

// StochasticConfig defines the random spawner and its difficulty ramp.
type StochasticConfig struct {
	InitialChance  float64 `yaml:"initial_chance"`   // Percent chance per tick at start
	ChanceStep     float64 `yaml:"chance_step"`      // Added to chance every tick
	SizeMin        float64 `yaml:"size_min"`         // Before offset
	SizeMax        float64 `yaml:"size_max"`         // Before offset
	SizeOffsetStep float64 `yaml:"size_offset_step"` // Added to size offset every tick
	VelocityMin    float64 `yaml:"velocity_min"`
	VelocityMax    float64 `yaml:"velocity_max"`
}

// WaveConfig defines the scripted twin-faller sweep.
type WaveConfig struct {
	FallerSize     float64 `yaml:"faller_size"`
	FallerVelocity float64 `yaml:"faller_velocity"`
	Gap            float64 `yaml:"gap"`    // Horizontal distance between twins
	Spread         float64 `yaml:"spread"` // Steps per faller width
}

// TimingConfig defines how the host drives ticks.
type TimingConfig struct {
	UPS       int     `yaml:"ups"`        // Updates per second
	FixedStep bool    `yaml:"fixed_step"` // Use 1/UPS instead of wall-clock deltas
	MaxStep   float64 `yaml:"max_step"`   // Upper bound on a wall-clock dt, seconds
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	// ReleaseAfterMS is how long a held key may go without auto-repeat
	// before the host reports it released.
	ReleaseAfterMS int `yaml:"release_after_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty or unknown yields "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

package config

// presetScale describes how a preset bends the configured ramp.
type presetScale struct {
	chance   float64 // Multiplier on the starting spawn chance
	ramp     float64 // Multiplier on both per-tick ramp steps
	velocity float64 // Multiplier on wave faller velocity
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {chance: 0.5, ramp: 0.5, velocity: 0.75},
	DifficultyNormal: {chance: 1, ramp: 1, velocity: 1},
	DifficultyHard:   {chance: 2.5, ramp: 2, velocity: 1.5},
	DifficultyFixed:  {chance: 1, ramp: 0, velocity: 1},
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty or unknown preset leaves the config untouched.
func ApplyPreset(cfg *FallingConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}

	s := &cfg.Spawn.Stochastic
	s.InitialChance *= scale.chance
	s.ChanceStep *= scale.ramp
	s.SizeOffsetStep *= scale.ramp

	cfg.Spawn.Wave.FallerVelocity *= scale.velocity
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

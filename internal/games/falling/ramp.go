package falling

import "github.com/vovakirdan/falling/internal/config"

// Ramp holds the difficulty scalars that grow every playing tick.
type Ramp struct {
	Chance     float64 // Percent chance of a stochastic spawn this tick
	SizeOffset float64 // Added to both ends of the stochastic size range
}

func newRamp(cfg config.StochasticConfig) Ramp {
	return Ramp{Chance: cfg.InitialChance, SizeOffset: 0}
}

// advance raises both scalars by their configured steps. There is no ceiling.
func (r *Ramp) advance(cfg config.StochasticConfig) {
	r.Chance += cfg.ChanceStep
	r.SizeOffset += cfg.SizeOffsetStep
}

package falling

import (
	"fmt"
	"math"

	"github.com/vovakirdan/falling/internal/config"
)

// Rand is the random source a session draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// uniform returns a value in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Spawner injects new fallers once per playing tick.
type Spawner interface {
	// Mode identifies the spawner for logs and snapshots.
	Mode() config.SpawnMode

	// Spawn returns the fallers to add this tick, possibly none.
	Spawn(field Playfield, ramp Ramp, rng Rand) []Faller

	// Reset drops any in-progress state.
	Reset()
}

// NewSpawner builds the spawner named by cfg.Mode.
func NewSpawner(cfg config.SpawnConfig) (Spawner, error) {
	switch cfg.Mode {
	case config.SpawnStochastic:
		return &StochasticSpawner{cfg: cfg.Stochastic}, nil
	case config.SpawnWave:
		return &WaveSpawner{cfg: cfg.Wave}, nil
	default:
		return nil, fmt.Errorf("falling: unknown spawn mode %q", cfg.Mode)
	}
}

// StochasticSpawner rolls once per tick against the ramp's spawn chance.
type StochasticSpawner struct {
	cfg config.StochasticConfig
}

// Mode implements Spawner.
func (s *StochasticSpawner) Mode() config.SpawnMode {
	return config.SpawnStochastic
}

// Spawn implements Spawner. Draw order: roll, size, x, velocity.
func (s *StochasticSpawner) Spawn(field Playfield, ramp Ramp, rng Rand) []Faller {
	if uniform(rng, 0, 100) >= ramp.Chance {
		return nil
	}

	size := uniform(rng, s.cfg.SizeMin+ramp.SizeOffset, s.cfg.SizeMax+ramp.SizeOffset)
	// The ramp can eventually grow fallers past the playfield width;
	// they are then pinned to the left edge.
	x := uniform(rng, 0, math.Max(field.Width-size, 0))
	velocity := uniform(rng, s.cfg.VelocityMin, s.cfg.VelocityMax)

	return []Faller{newFaller(x, size, velocity)}
}

// Reset implements Spawner. The stochastic spawner keeps no state of its own.
func (s *StochasticSpawner) Reset() {}

// WaveSpawner plays the wave pattern over and over.
type WaveSpawner struct {
	cfg    config.WaveConfig
	active *Pattern
	waves  int // Patterns built since the last reset
}

// Mode implements Spawner.
func (w *WaveSpawner) Mode() config.SpawnMode {
	return config.SpawnWave
}

// Spawn implements Spawner. A tick with no active pattern only builds one;
// the tick that finds it exhausted only clears it.
func (w *WaveSpawner) Spawn(field Playfield, _ Ramp, _ Rand) []Faller {
	if w.active == nil {
		w.active = NewWavePattern(w.cfg, field.Width)
		w.waves++
		return nil
	}

	step, ok := w.active.Next()
	if !ok {
		w.active = nil
		return nil
	}

	switch st := step.(type) {
	case Spawn:
		return append([]Faller(nil), st.Fallers...)
	case Wait:
		return nil
	default:
		panic(fmt.Sprintf("falling: unknown pattern step %T", step))
	}
}

// Reset implements Spawner.
func (w *WaveSpawner) Reset() {
	w.active = nil
	w.waves = 0
}

// Remaining returns the unconsumed steps of the active pattern, 0 if none.
func (w *WaveSpawner) Remaining() int {
	if w.active == nil {
		return 0
	}
	return w.active.Remaining()
}

// Waves returns how many patterns have been started since the last reset.
func (w *WaveSpawner) Waves() int {
	return w.waves
}

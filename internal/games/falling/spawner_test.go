package falling

import (
	"testing"

	"github.com/vovakirdan/falling/internal/config"
)

// seqRand replays fixed values, then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v
}

func TestNewSpawnerModes(t *testing.T) {
	cfg := config.DefaultFallingConfig().Spawn

	cfg.Mode = config.SpawnStochastic
	s, err := NewSpawner(cfg)
	if err != nil || s.Mode() != config.SpawnStochastic {
		t.Errorf("stochastic: got %v, %v", s, err)
	}

	cfg.Mode = config.SpawnWave
	s, err = NewSpawner(cfg)
	if err != nil || s.Mode() != config.SpawnWave {
		t.Errorf("wave: got %v, %v", s, err)
	}

	cfg.Mode = "sideways"
	if _, err := NewSpawner(cfg); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestStochasticSpawnDraws(t *testing.T) {
	cfg := config.DefaultFallingConfig().Spawn.Stochastic
	sp := &StochasticSpawner{cfg: cfg}
	field := Playfield{Width: 700, Height: 700}
	ramp := newRamp(cfg) // chance 1%

	// roll 0.5 < 1, size 10+0.5*40 = 30, x 0.5*(700-30), velocity 200
	rng := &seqRand{vals: []float64{0.005, 0.5, 0.5, 0}}
	got := sp.Spawn(field, ramp, rng)
	if len(got) != 1 {
		t.Fatalf("spawned %d fallers, want 1", len(got))
	}
	f := got[0]
	if f.Size != 30 || f.Pos.X != 335 || f.Pos.Y != -30 || f.Velocity != 200 {
		t.Errorf("faller = %+v", f)
	}
}

func TestStochasticRollAtChanceMisses(t *testing.T) {
	cfg := config.DefaultFallingConfig().Spawn.Stochastic
	sp := &StochasticSpawner{cfg: cfg}
	ramp := Ramp{Chance: 50}

	rng := &seqRand{vals: []float64{0.5}} // roll exactly 50
	if got := sp.Spawn(Playfield{Width: 700, Height: 700}, ramp, rng); got != nil {
		t.Errorf("roll equal to chance spawned %v", got)
	}
}

func TestStochasticSizeOffsetShiftsRange(t *testing.T) {
	cfg := config.DefaultFallingConfig().Spawn.Stochastic
	sp := &StochasticSpawner{cfg: cfg}
	ramp := Ramp{Chance: 100, SizeOffset: 5}

	rng := &seqRand{vals: []float64{0, 0, 0, 0}}
	got := sp.Spawn(Playfield{Width: 700, Height: 700}, ramp, rng)
	if len(got) != 1 || got[0].Size != 15 {
		t.Errorf("got %+v, want one faller of size 15", got)
	}
}

func TestStochasticOversizedFallerPinnedLeft(t *testing.T) {
	cfg := config.DefaultFallingConfig().Spawn.Stochastic
	sp := &StochasticSpawner{cfg: cfg}
	ramp := Ramp{Chance: 100, SizeOffset: 1000}

	rng := &seqRand{vals: []float64{0, 0.9, 0.9, 0.9}}
	got := sp.Spawn(Playfield{Width: 700, Height: 700}, ramp, rng)
	if len(got) != 1 {
		t.Fatalf("spawned %d, want 1", len(got))
	}
	if got[0].Pos.X != 0 {
		t.Errorf("x = %v, want 0", got[0].Pos.X)
	}
}

func TestWaveSpawnerCycle(t *testing.T) {
	w := &WaveSpawner{cfg: defaultWave()}
	field := Playfield{Width: 700, Height: 700}

	if got := w.Spawn(field, Ramp{}, nil); got != nil {
		t.Fatalf("building tick spawned %v", got)
	}
	if w.Remaining() != 138 || w.Waves() != 1 {
		t.Fatalf("after build: remaining %d waves %d", w.Remaining(), w.Waves())
	}

	total := 0
	for i := 0; i < 138; i++ {
		total += len(w.Spawn(field, Ramp{}, nil))
	}
	if total != 138 {
		t.Errorf("one wave spawned %d fallers, want 138", total)
	}

	// The tick that finds the pattern empty only clears it.
	if got := w.Spawn(field, Ramp{}, nil); got != nil {
		t.Errorf("clearing tick spawned %v", got)
	}
	if w.active != nil {
		t.Error("exhausted pattern should be cleared")
	}

	w.Spawn(field, Ramp{}, nil)
	if w.Waves() != 2 || w.Remaining() != 138 {
		t.Errorf("second wave: remaining %d waves %d", w.Remaining(), w.Waves())
	}
}

func TestWaveSpawnerReturnsCopies(t *testing.T) {
	w := &WaveSpawner{cfg: defaultWave()}
	field := Playfield{Width: 700, Height: 700}
	w.Spawn(field, Ramp{}, nil)

	got := w.Spawn(field, Ramp{}, nil)
	got[0].Pos.X = 999

	first, _ := NewWavePattern(defaultWave(), 700).Next()
	if w.active.steps[0].(Spawn).Fallers[0].Pos.X != first.(Spawn).Fallers[0].Pos.X {
		t.Error("mutating spawned fallers changed the pattern")
	}
}

func TestWaveSpawnerReset(t *testing.T) {
	w := &WaveSpawner{cfg: defaultWave()}
	field := Playfield{Width: 700, Height: 700}
	for i := 0; i < 5; i++ {
		w.Spawn(field, Ramp{}, nil)
	}
	w.Reset()
	if w.active != nil || w.Waves() != 0 || w.Remaining() != 0 {
		t.Errorf("reset left active=%v waves=%d", w.active, w.Waves())
	}
}

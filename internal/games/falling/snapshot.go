package falling

import (
	"github.com/vovakirdan/falling/internal/config"
	"github.com/vovakirdan/falling/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
// Mutating it never affects the session.
type Snapshot struct {
	Tick             uint64
	State            State
	Paused           bool
	Elapsed          float64
	Field            Playfield
	Player           core.Square
	Direction        Direction
	Fallers          []core.Square
	Chance           float64
	SizeOffset       float64
	Mode             config.SpawnMode
	PatternRemaining int // Only meaningful in wave mode
}

// Snapshot captures the session's current renderable state.
func (s *Session) Snapshot() Snapshot {
	fallers := make([]core.Square, len(s.fallers))
	for i, f := range s.fallers {
		fallers[i] = f.Square()
	}

	snap := Snapshot{
		Tick:       s.tick,
		State:      s.state,
		Paused:     s.paused,
		Elapsed:    s.elapsed,
		Field:      s.field,
		Player:     s.player.Square(),
		Direction:  s.player.Direction(),
		Fallers:    fallers,
		Chance:     s.ramp.Chance,
		SizeOffset: s.ramp.SizeOffset,
		Mode:       s.spawner.Mode(),
	}
	if w, ok := s.spawner.(*WaveSpawner); ok {
		snap.PatternRemaining = w.Remaining()
	}
	return snap
}

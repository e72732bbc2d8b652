// Package falling implements the falling-blocks avoidance game.
// The player slides along the bottom of the playfield and must dodge
// squares dropped by either a random spawner or a scripted wave pattern.
package falling

import (
	"fmt"

	"github.com/vovakirdan/falling/internal/config"
	"github.com/vovakirdan/falling/internal/core"
)

// Playfield is the simulated area in pixels.
type Playfield struct {
	Width, Height float64
}

// State is the session's phase.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Session.Tick.
type StepResult struct {
	State   State
	Spawned int  // Fallers injected this tick
	Pruned  int  // Fallers removed this tick (fell off or hit the player)
	Hit     bool // The player was struck this tick
}

// Session owns one game: the player, live fallers, difficulty ramp, spawner
// and clock. It is not safe for concurrent use.
type Session struct {
	cfg     config.FallingConfig
	field   Playfield
	player  *Player
	fallers []Faller
	ramp    Ramp
	rng     Rand
	spawner Spawner
	elapsed float64 // Seconds survived
	state   State
	paused  bool
	tick    uint64
}

// NewSession validates cfg and creates a session in the Playing state.
// rng is owned by the session from here on.
func NewSession(cfg config.FallingConfig, rng Rand) (*Session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	spawner, err := NewSpawner(cfg.Spawn)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("falling: nil random source")
	}

	s := &Session{
		cfg:     cfg,
		field:   Playfield{Width: cfg.Playfield.Width, Height: cfg.Playfield.Height},
		rng:     rng,
		spawner: spawner,
	}
	s.Reset()
	return s, nil
}

// Reset restores the starting player, clears fallers and the active pattern,
// rewinds the ramp and clock, and returns to Playing. The random source keeps
// its position so the next run differs from the last.
func (s *Session) Reset() {
	s.player = NewPlayer(s.cfg.Player, s.field)
	s.fallers = nil
	s.ramp = newRamp(s.cfg.Spawn.Stochastic)
	s.spawner.Reset()
	s.elapsed = 0
	s.state = StatePlaying
	s.paused = false
	s.tick = 0
}

// HandleButton routes a decoded button event. Movement keys reach the player
// while playing; Reset only works after game over; Pause toggles on press.
func (s *Session) HandleButton(ev core.ButtonEvent) {
	switch ev.Key {
	case core.KeyLeft, core.KeyRight:
		if s.state == StatePlaying {
			s.player.HandleButton(ev.Key, ev.Transition)
		}
	case core.KeyReset:
		if s.state == StateGameOver && ev.Transition == core.Press {
			s.Reset()
		}
	case core.KeyPause:
		if s.state == StatePlaying && ev.Transition == core.Press {
			s.paused = !s.paused
		}
	}
}

// Tick advances the simulation by dt seconds. A non-positive dt still runs
// spawning and collision but moves nothing and adds no time.
func (s *Session) Tick(dt float64) StepResult {
	if s.state == StateGameOver || s.paused {
		return StepResult{State: s.state}
	}
	s.tick++

	spawned := s.spawner.Spawn(s.field, s.ramp, s.rng)
	s.fallers = append(s.fallers, spawned...)
	s.ramp.advance(s.cfg.Spawn.Stochastic)

	s.player.Advance(dt)

	for i := range s.fallers {
		s.fallers[i].Advance(dt, s.field.Height)
	}

	hit := false
	player := s.player.Square()
	for i := range s.fallers {
		if s.fallers[i].Dead {
			continue
		}
		if core.SquaresCollide(player, s.fallers[i].Square()) {
			s.fallers[i].Dead = true
			s.player.MarkCollided()
			hit = true
		}
	}

	before := len(s.fallers)
	live := s.fallers[:0]
	for _, f := range s.fallers {
		if !f.Dead {
			live = append(live, f)
		}
	}
	s.fallers = live

	if s.player.Dead() {
		s.state = StateGameOver
	} else if dt > 0 {
		s.elapsed += dt
	}

	return StepResult{
		State:   s.state,
		Spawned: len(spawned),
		Pruned:  before - len(live),
		Hit:     hit,
	}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Paused reports whether ticks are currently suspended.
func (s *Session) Paused() bool { return s.paused }

// Elapsed returns the seconds survived; frozen once the game is over.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Ramp returns the current difficulty scalars.
func (s *Session) Ramp() Ramp { return s.ramp }

// Mode returns the active spawn mode.
func (s *Session) Mode() config.SpawnMode { return s.spawner.Mode() }

// Field returns the playfield dimensions.
func (s *Session) Field() Playfield { return s.field }

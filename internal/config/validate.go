package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the preconditions the simulation relies on. A spawn size
// that leaves no horizontal room on the playfield is rejected here rather
// than clamped during play.
func Validate(cfg FallingConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	pf := cfg.Playfield
	check(pf.Width > 0 && pf.Height > 0, "playfield must be positive, got %vx%v", pf.Width, pf.Height)

	p := cfg.Player
	check(p.Size > 0, "player.size must be positive, got %v", p.Size)
	check(p.Speed >= 0, "player.speed must not be negative, got %v", p.Speed)
	check(p.Size < pf.Width, "player.size %v must be smaller than playfield width %v", p.Size, pf.Width)
	check(p.BottomOffset >= 0 && p.Size+p.BottomOffset <= pf.Height,
		"player does not fit vertically: size %v + bottom_offset %v > height %v", p.Size, p.BottomOffset, pf.Height)

	switch cfg.Spawn.Mode {
	case SpawnStochastic:
		s := cfg.Spawn.Stochastic
		check(s.SizeMin > 0, "spawn.stochastic.size_min must be positive, got %v", s.SizeMin)
		check(s.SizeMin <= s.SizeMax, "spawn.stochastic size range inverted: %v > %v", s.SizeMin, s.SizeMax)
		check(s.SizeMax < pf.Width, "spawn.stochastic.size_max %v leaves no room on a playfield %v wide", s.SizeMax, pf.Width)
		check(s.VelocityMin >= 0, "spawn.stochastic.velocity_min must not be negative, got %v", s.VelocityMin)
		check(s.VelocityMin <= s.VelocityMax, "spawn.stochastic velocity range inverted: %v > %v", s.VelocityMin, s.VelocityMax)
		check(s.InitialChance >= 0, "spawn.stochastic.initial_chance must not be negative, got %v", s.InitialChance)
		check(s.ChanceStep >= 0 && s.SizeOffsetStep >= 0, "spawn.stochastic ramp steps must not be negative")
	case SpawnWave:
		w := cfg.Spawn.Wave
		check(w.FallerSize > 0, "spawn.wave.faller_size must be positive, got %v", w.FallerSize)
		check(w.FallerSize < pf.Width, "spawn.wave.faller_size %v leaves no room on a playfield %v wide", w.FallerSize, pf.Width)
		check(w.FallerVelocity >= 0, "spawn.wave.faller_velocity must not be negative, got %v", w.FallerVelocity)
		check(w.Spread > 0, "spawn.wave.spread must be positive, got %v", w.Spread)
	default:
		check(false, "unknown spawn.mode %q (want %q or %q)", cfg.Spawn.Mode, SpawnStochastic, SpawnWave)
	}

	check(cfg.Timing.UPS > 0, "timing.ups must be positive, got %d", cfg.Timing.UPS)
	check(cfg.Timing.MaxStep >= 0, "timing.max_step must not be negative, got %v", cfg.Timing.MaxStep)
	check(cfg.Input.ReleaseAfterMS >= 0, "input.release_after_ms must not be negative, got %d", cfg.Input.ReleaseAfterMS)

	return errors.Join(errs...)
}

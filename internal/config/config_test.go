package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFallingConfig() {
		t.Errorf("embedded YAML drifted from DefaultFallingConfig():\n got %+v\nwant %+v", cfg, DefaultFallingConfig())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFallingCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("spawn:\n  mode: stochastic\nplayer:\n  speed: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFalling(path)
	if err != nil {
		t.Fatalf("LoadFalling failed: %v", err)
	}
	if cfg.Spawn.Mode != SpawnStochastic {
		t.Errorf("Spawn.Mode = %q, expected %q", cfg.Spawn.Mode, SpawnStochastic)
	}
	if cfg.Player.Speed != 250 {
		t.Errorf("Player.Speed = %v, expected 250", cfg.Player.Speed)
	}
	// Keys absent from the file keep their defaults
	if cfg.Player.Size != 30 || cfg.Playfield.Width != 700 {
		t.Errorf("partial file should keep defaults, got size %v width %v", cfg.Player.Size, cfg.Playfield.Width)
	}
}

func TestLoadFallingErrors(t *testing.T) {
	if _, err := LoadFalling(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFalling(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultFallingConfig()
	cfg.Spawn.Mode = SpawnStochastic
	cfg.Timing.UPS = 120

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FallingConfig)
		ok     bool
	}{
		{"defaults", func(*FallingConfig) {}, true},
		{"stochastic defaults", func(c *FallingConfig) { c.Spawn.Mode = SpawnStochastic }, true},
		{"unknown mode", func(c *FallingConfig) { c.Spawn.Mode = "chaos" }, false},
		{"stochastic size_max fills playfield", func(c *FallingConfig) {
			c.Spawn.Mode = SpawnStochastic
			c.Spawn.Stochastic.SizeMax = 700
		}, false},
		{"stochastic size range inverted", func(c *FallingConfig) {
			c.Spawn.Mode = SpawnStochastic
			c.Spawn.Stochastic.SizeMin = 60
		}, false},
		{"stochastic negative velocity", func(c *FallingConfig) {
			c.Spawn.Mode = SpawnStochastic
			c.Spawn.Stochastic.VelocityMin = -1
		}, false},
		{"wave faller wider than playfield", func(c *FallingConfig) { c.Spawn.Wave.FallerSize = 800 }, false},
		{"wave zero spread", func(c *FallingConfig) { c.Spawn.Wave.Spread = 0 }, false},
		{"zero ups", func(c *FallingConfig) { c.Timing.UPS = 0 }, false},
		{"player too large", func(c *FallingConfig) { c.Player.Size = 700 }, false},
		{"player does not fit vertically", func(c *FallingConfig) { c.Player.BottomOffset = 690 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFallingConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.ok && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("error should wrap ErrInvalid, got %v", err)
				}
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultFallingConfig()

	easy := DefaultFallingConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Spawn.Stochastic.InitialChance >= base.Spawn.Stochastic.InitialChance {
		t.Error("easy should lower the starting spawn chance")
	}

	hard := DefaultFallingConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Spawn.Stochastic.ChanceStep <= base.Spawn.Stochastic.ChanceStep {
		t.Error("hard should steepen the ramp")
	}
	if hard.Spawn.Wave.FallerVelocity <= base.Spawn.Wave.FallerVelocity {
		t.Error("hard should speed up wave fallers")
	}

	fixed := DefaultFallingConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Spawn.Stochastic.ChanceStep != 0 || fixed.Spawn.Stochastic.SizeOffsetStep != 0 {
		t.Error("fixed should disable the ramp")
	}

	untouched := DefaultFallingConfig()
	ApplyPreset(&untouched, ParsePreset("bogus"))
	if untouched != base {
		t.Error("unknown preset should leave the config alone")
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("FALLING_SEED", "42")
	t.Setenv("FALLING_UPS", "30")
	t.Setenv("FALLING_SPAWN_MODE", "stochastic")

	o, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv failed: %v", err)
	}
	if o.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", o.Seed)
	}

	cfg := DefaultFallingConfig()
	o.Apply(&cfg)
	if cfg.Timing.UPS != 30 {
		t.Errorf("UPS = %d, expected 30", cfg.Timing.UPS)
	}
	if cfg.Spawn.Mode != SpawnStochastic {
		t.Errorf("Mode = %q, expected stochastic", cfg.Spawn.Mode)
	}
}

func TestParseEnvRejectsGarbage(t *testing.T) {
	t.Setenv("FALLING_SEED", "not-a-number")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for malformed FALLING_SEED")
	}
}

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling/internal/config"
)

// runOptions is the merged result of config file, environment and flags.
// The difficulty preset is kept separate so it is applied exactly once,
// after any interactive choice.
type runOptions struct {
	cfg       config.FallingConfig
	preset    config.DifficultyPreset
	seed      int64
	level     log.Level
	modeSet   bool // Mode came from a flag or the environment
	presetSet bool
}

// resolveOptions merges the layers in order: config file, environment,
// then flags the user set explicitly.
func resolveOptions(cmd *cobra.Command) (runOptions, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return runOptions{}, err
	}
	flags := cmd.Flags()

	path := env.ConfigPath
	if flags.Changed("config") {
		path = flagConfig
	}
	cfg, err := config.LoadFalling(path)
	if err != nil {
		return runOptions{}, err
	}
	env.Apply(&cfg)

	opts := runOptions{
		seed:    env.Seed,
		modeSet: env.SpawnMode != "",
	}

	if flags.Changed("ups") {
		cfg.Timing.UPS = flagUPS
	}
	if flags.Changed("mode") {
		cfg.Spawn.Mode = config.SpawnMode(flagMode)
		opts.modeSet = true
	}
	if flags.Changed("seed") {
		opts.seed = flagSeed
	}

	difficulty := env.Difficulty
	if flags.Changed("difficulty") {
		difficulty = flagDifficulty
	}
	if difficulty != "" {
		opts.preset = config.ParsePreset(difficulty)
		if opts.preset == "" {
			return runOptions{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
		opts.presetSet = true
	}

	levelName := flagLogLevel
	if !flags.Changed("log-level") && env.LogLevel != "" {
		levelName = env.LogLevel
	}
	opts.level, err = log.ParseLevel(levelName)
	if err != nil {
		return runOptions{}, fmt.Errorf("log level: %w", err)
	}

	opts.cfg = cfg
	return opts, nil
}

// finalConfig applies the preset and validates the result.
func (o runOptions) finalConfig() (config.FallingConfig, error) {
	cfg := o.cfg
	config.ApplyPreset(&cfg, o.preset)
	if err := config.Validate(cfg); err != nil {
		return config.FallingConfig{}, err
	}
	return cfg, nil
}

// seedOrNow returns the configured seed, or a time-based one for 0.
func (o runOptions) seedOrNow() int64 {
	if o.seed != 0 {
		return o.seed
	}
	return time.Now().UnixNano()
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "falling",
		Level:           level,
	})
}

// logPreset notes presets that change how the game plays over time.
func logPreset(logger *log.Logger, preset config.DifficultyPreset) {
	if preset == "" {
		return
	}
	if config.IsFixedPreset(preset) {
		logger.Info("difficulty ramp disabled", "preset", preset)
		return
	}
	logger.Debug("difficulty preset", "preset", preset)
}

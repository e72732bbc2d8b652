package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/falling/internal/core"
	"github.com/vovakirdan/falling/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Without --mode (or FALLING_SPAWN_MODE) a menu asks for the spawn mode and
difficulty first. An explicit --difficulty wins over the menu choice.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  P          - Pause
  R          - Restart (after game over)
  ?          - Toggle key help
  Q/Ctrl+C   - Quit

Terminals only report key presses, so a movement key counts as held until it
stops auto-repeating for input.release_after_ms, or the other direction is
pressed.

Logs go to ~/.falling/falling.log.

Examples:
  falling play
  falling play --mode wave
  falling play --mode stochastic --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.Seed = opts.seedOrNow()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if !opts.modeSet {
		selection, selErr := tui.RunMenu(rt.ScreenW, rt.ScreenH)
		if selErr != nil {
			return fmt.Errorf("menu: %w", selErr)
		}
		// User quit from the menu
		if selection == nil {
			return nil
		}
		opts.cfg.Spawn.Mode = selection.Mode
		if !opts.presetSet {
			opts.preset = selection.Difficulty
		}
	}

	cfg, err := opts.finalConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file.
	var logOut io.Writer = io.Discard
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger := newLogger(logOut, opts.level)
	logPreset(logger, opts.preset)

	if err := tui.Run(tui.Options{Config: cfg, Runtime: rt, Logger: logger}); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogFile opens ~/.falling/falling.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".falling")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "falling.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling/internal/config"
	"github.com/vovakirdan/falling/internal/core"
	"github.com/vovakirdan/falling/internal/games/falling"
)

var (
	flagTicks       int
	flagDT          float64
	flagRestart     bool
	flagShowFallers bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless and print a summary",
	Long: `Run the game without a terminal UI. The player never moves, so the run
shows how long a standing player survives and what the spawner produced.

Each tick advances by --dt seconds (default 1/UPS). --dt 0 freezes all
motion and only exercises spawning, which makes wave runs easy to compare.

Examples:
  falling simulate --ticks 600 --seed 42 --mode stochastic
  falling simulate --ticks 10 --dt 0 --mode wave --fallers
  falling simulate --ticks 36000 --restart --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to run")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 0, "Seconds per tick (default 1/UPS)")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Restart after game over instead of stopping")
	simulateCmd.Flags().BoolVar(&flagShowFallers, "fallers", false, "Print every live faller at the end")
}

// simSummary collects totals over a headless run.
type simSummary struct {
	Seed    int64
	Ticks   int // Ticks actually simulated
	Runs    int // Games started, including the first
	Deaths  int
	Spawned int
	Pruned  int
	Final   falling.Snapshot
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	cfg, err := opts.finalConfig()
	if err != nil {
		return err
	}

	dt := 1 / float64(cfg.Timing.UPS)
	if cmd.Flags().Changed("dt") {
		dt = flagDT
	}

	logger := newLogger(os.Stderr, opts.level)
	logPreset(logger, opts.preset)

	sum, err := simulate(cfg, opts.seedOrNow(), flagTicks, dt, flagRestart, logger)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), sum, flagShowFallers)
	return nil
}

// simulate drives a session for up to ticks steps of dt seconds.
// Without restart it stops at the first game over.
func simulate(cfg config.FallingConfig, seed int64, ticks int, dt float64, restart bool, logger *log.Logger) (simSummary, error) {
	session, err := falling.NewSession(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return simSummary{}, err
	}

	runID := uuid.NewString()
	logger.Info("run started", "run", runID, "mode", session.Mode(), "seed", seed, "dt", dt)

	sum := simSummary{Seed: seed, Runs: 1}
	for i := 0; i < ticks; i++ {
		if session.State() == falling.StateGameOver {
			if !restart {
				break
			}
			session.HandleButton(core.Pressed(core.KeyReset))
			sum.Runs++
			runID = uuid.NewString()
			logger.Info("run started", "run", runID, "mode", session.Mode())
		}

		res := session.Tick(dt)
		sum.Ticks++
		sum.Spawned += res.Spawned
		sum.Pruned += res.Pruned

		if res.State == falling.StateGameOver {
			sum.Deaths++
			logger.Info("game over", "run", runID, "elapsed", session.Elapsed(), "tick", i+1)
		}
	}

	sum.Final = session.Snapshot()
	logger.Debug("simulation finished", "run", runID, "ticks", sum.Ticks, "deaths", sum.Deaths)
	return sum, nil
}

func printSummary(w io.Writer, sum simSummary, showFallers bool) {
	f := sum.Final
	fmt.Fprintf(w, "seed:        %d\n", sum.Seed)
	fmt.Fprintf(w, "mode:        %s\n", f.Mode)
	fmt.Fprintf(w, "ticks:       %d\n", sum.Ticks)
	fmt.Fprintf(w, "runs:        %d\n", sum.Runs)
	fmt.Fprintf(w, "deaths:      %d\n", sum.Deaths)
	fmt.Fprintf(w, "spawned:     %d\n", sum.Spawned)
	fmt.Fprintf(w, "pruned:      %d\n", sum.Pruned)
	fmt.Fprintf(w, "live:        %d\n", len(f.Fallers))
	fmt.Fprintf(w, "state:       %s\n", f.State)
	fmt.Fprintf(w, "elapsed:     %.3fs\n", f.Elapsed)
	fmt.Fprintf(w, "chance:      %.3f%%\n", f.Chance)
	fmt.Fprintf(w, "size offset: %.3f\n", f.SizeOffset)
	if f.Mode == config.SpawnWave {
		fmt.Fprintf(w, "wave left:   %d\n", f.PatternRemaining)
	}

	if !showFallers {
		return
	}
	for i, sq := range f.Fallers {
		fmt.Fprintf(w, "faller %3d: x=%.3f y=%.3f size=%.3f\n", i, sq.Pos.X, sq.Pos.Y, sq.Size)
	}
}

// falling is a terminal avoidance game: slide along the bottom of the field
// and dodge the blocks raining down.
//
// Usage:
//
//	falling play             - Play in the terminal
//	falling simulate         - Run the simulation headless and print a summary
//	falling config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--ups <rate>          - Simulation updates per second (default: from config)
//	--seed <value>        - RNG seed for reproducible runs
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--mode <name>         - Spawn mode: wave or stochastic
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagUPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "falling",
	Short: "Falling - dodge the blocks in your terminal",
	Long: `Falling is a single-player avoidance game. Your block slides along the
bottom of the field; blocks fall from the top, either at random with a
slowly rising difficulty or in a scripted sweeping wave.

Available commands:
  play      - Play in the terminal
  simulate  - Run headless for a number of ticks and print a summary
  config    - Print the effective configuration

Environment:
  FALLING_CONFIG, FALLING_SEED, FALLING_UPS, FALLING_SPAWN_MODE,
  FALLING_DIFFICULTY, FALLING_LOG_LEVEL override config values;
  explicit flags override the environment.

Examples:
  falling play
  falling play --mode stochastic --difficulty hard
  falling simulate --ticks 600 --seed 42
  falling config --mode wave > falling.yaml`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagUPS, "ups", 0, "Updates per second (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagMode, "mode", "", "Spawn mode: wave, stochastic")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after merging the
config file, environment, flags and difficulty preset.

Examples:
  falling config
  falling config --difficulty hard
  falling config --defaults > ~/.falling/configs/falling.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	cfg, err := opts.finalConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swordrush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, after the search
order (--config, ~/.swordrush/configs/swordrush.yaml, ./configs/swordrush.yaml,
built-in defaults) and the difficulty preset are applied.

The output is valid YAML and can be saved as a starting point:
  swordrush config > ~/.swordrush/configs/swordrush.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

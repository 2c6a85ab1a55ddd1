package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/swordrush/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a local session in the terminal.

Controls:
  Left/Right, A/D   - Move (only while the sword is at rest)
  Space, J          - Swing
  E, X              - Shockwave
  P                 - Pause
  R                 - Restart
  M/Esc             - Back to menu
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save screenshot

Difficulty options:
  easy   - Slower enemies, fewer projectiles, shorter shockwave cooldown
  normal - Default tuning
  hard   - Faster enemies, more projectiles, longer cooldown

Examples:
  swordrush play
  swordrush play --difficulty hard
  swordrush play --seed 42
  swordrush play --config ./my-swordrush.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, label, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true, "swordrush")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sd, err := openScores(logger)
	if err != nil {
		return err
	}
	defer sd.close()

	deps := tui.Deps{
		Config:  cfg,
		Scores:  sd.scores,
		History: sd.history,
		Logger:  logger,
		Label:   label,
	}
	if runErr := tui.Run(deps, runtimeConfig(width, height)); runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

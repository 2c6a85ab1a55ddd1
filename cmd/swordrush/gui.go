package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/swordrush/internal/platform/gui"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a desktop window. The field is drawn at its configured size times
--scale; the window can be resized freely.

Controls:
  A/D, Left/Right   - Move
  Space, J          - Swing
  E, K              - Shockwave
  P                 - Pause
  R                 - Restart
  M/Esc             - Title screen
  Enter             - Start
  Q                 - Quit

Examples:
  swordrush gui
  swordrush gui --scale 1.5 --difficulty easy
  swordrush gui --store gdata`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runGUI(_ *cobra.Command, _ []string) error {
	cfg, label, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false, "swordrush")
	if err != nil {
		return err
	}
	defer closeLog()

	sd, err := openScores(logger)
	if err != nil {
		return err
	}
	defer sd.close()

	rt := runtimeConfig(cfg.Field.Width, cfg.Field.Height)
	return gui.Run(gui.NewWindow(cfg, sd.scores, rt, logger, label), flagScale)
}

// swordrush is a 2D sword-combat arena playable in the terminal, over SSH or
// in a desktop window.
//
// Usage:
//
//	swordrush play     - Play in the terminal
//	swordrush gui      - Play in a desktop window
//	swordrush serve    - Start SSH server for remote play
//	swordrush sim      - Run headless autopilot games
//	swordrush scores   - Show run history and the best score
//	swordrush config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.swordrush/scores.db)
//	--store <kind>        - Highscore backend: sqlite, gdata, memory
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swordrush/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swordrush",
	Short: "Sword Rush - hold the line with a blade and a shockwave",
	Long: `Sword Rush is a 2D arena: enemies walk in from both sides, projectiles
fall from above, and every kill feeds a combo whose rank multiplies your score.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run headless autopilot games
  scores   - View run history
  config   - Print the effective configuration

Examples:
  swordrush play
  swordrush play --difficulty hard
  swordrush gui --scale 1.5
  swordrush serve --ssh :2222
  swordrush sim --runs 20 --seed 7
  swordrush scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagStore, "store", storeSQLite, "Highscore backend: sqlite, gdata, memory")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

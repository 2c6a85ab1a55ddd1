package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swordrush/internal/games/swordrush"
	"github.com/vovakirdan/swordrush/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and the best score",
	Long: `Display the best recorded runs from the scores database.

Examples:
  swordrush scores
  swordrush scores --limit 25
  swordrush scores --db ./scores.db
  swordrush scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs and the best score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(swordrush.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	runs, err := store.TopRuns(swordrush.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Sword Rush")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'swordrush play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %-8s  %s\n", "#", "Score", "Kills", "Combo", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %-8s  %s\n", "-", "-----", "-----", "-----", "----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-5s  %-8s  %s\n",
			i+1, r.Score, r.Kills, r.MaxCombo, r.PeakRank,
			r.Duration().Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(swordrush.GameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	fmt.Printf("Total kills: %d   Best combo: %d   Play time: %s\n",
		stats.TotalKills, stats.BestCombo, stats.PlayTime.Round(time.Second))
	return nil
}

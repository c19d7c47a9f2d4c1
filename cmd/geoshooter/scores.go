package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geo-shooter/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs and aggregate statistics.

Examples:
  geoshooter scores
  geoshooter scores --db ./runs.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Geometry Shooter")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'geoshooter play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %s\n", "Rank", "Score", "Survived", "Coins", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")

	for i, entry := range runs {
		survived := time.Duration(entry.DurationSec * float64(time.Second)).Round(time.Second)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %-6d  %s\n", i+1, entry.Score, survived, entry.Coins, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Coins earned: %d\n",
		stats.RunCount, stats.HighScore, stats.AvgScore, stats.TotalCoins)
}

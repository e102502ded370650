package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 results for the given board variant.

Examples:
  t2048 scores 2048
  t2048 scores 2048-mini`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %10s  %6s  %6s  %s\n", "Rank", "Score", "Tile", "Moves", "When")
	fmt.Printf("  %-4s  %10s  %6s  %6s  %s\n", "----", "-----", "----", "-----", "----")

	for i, r := range scores {
		fmt.Printf("  %-4d  %10s  %6d  %6d  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.HighestTile, r.Moves, humanize.Time(r.CreatedAt))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s  Games: %d  Average: %s  Highest tile: %d\n",
			humanize.Comma(int64(stats.HighScore)),
			stats.GamesCount,
			humanize.CommafWithDigits(stats.AvgScore, 1),
			stats.HighestTile)
	}
}

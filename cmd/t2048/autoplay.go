package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/autoplay"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagGames    int
	flagParallel int
	flagMaxMoves int
	flagSave     bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay [variant]",
	Short: "Play random games without a UI",
	Long: `Play a batch of games with random legal moves and print a summary.

Game i uses seed --seed + i, so a fixed --seed reproduces the batch.
With --save, finished games are recorded in the scores database.

Examples:
  t2048 autoplay
  t2048 autoplay 2048-mini --games 500 --parallel 8
  t2048 autoplay 2048-big --seed 7 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagParallel, "parallel", 1, "Games played concurrently")
	autoplayCmd.Flags().IntVar(&flagMaxMoves, "max-moves", autoplay.DefaultMaxMoves, "Move limit per game")
	autoplayCmd.Flags().BoolVar(&flagSave, "save", false, "Record finished games in the scores database")
}

func runAutoplay(cmd *cobra.Command, args []string) {
	gameID := appConfig.UI.DefaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	variant, ok := t2048.GetVariant(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("autoplay started", "variant", variant.ID, "games", flagGames, "parallel", flagParallel)
	runs, err := autoplay.Play(ctx, autoplay.Config{
		Variant:  variant,
		Games:    flagGames,
		Seed:     flagSeed,
		MaxMoves: flagMaxMoves,
		Workers:  flagParallel,
		Options:  appConfig.Options(0),
	}, logger)
	if err != nil {
		logger.Error("autoplay failed", "err", err)
		os.Exit(1)
	}

	if flagSave {
		if store := openStore(logger); store != nil {
			n, err := autoplay.Record(store, variant, runs)
			if err != nil {
				logger.Warn("cannot save results", "err", err)
			}
			logger.Info("results saved", "count", n)
			store.Close()
		}
	}

	printSummary(autoplay.Summarize(variant, runs))
}

func printSummary(s autoplay.Summary) {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	runs := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Seed", "Score", "Tile", "Moves", "Done", "Time").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range s.Runs {
		done := "yes"
		if !r.Over {
			done = "limit"
		}
		runs.Row(
			strconv.FormatInt(r.Seed, 10),
			humanize.Comma(int64(r.Score)),
			strconv.Itoa(r.HighestTile),
			strconv.Itoa(r.Moves),
			done,
			r.Duration.Round(time.Millisecond).String(),
		)
	}

	fmt.Printf("Autoplay - %s, %d games\n", s.Variant.Name, len(s.Runs))
	fmt.Println(runs.String())
	fmt.Println()
	fmt.Printf("Best: %s  Mean: %s  Highest tile: %d\n",
		humanize.Comma(int64(s.BestScore)),
		humanize.CommafWithDigits(s.MeanScore, 1),
		s.BestTile)

	fmt.Println("Highest tile reached:")
	for _, tc := range s.TileCounts() {
		fmt.Printf("  %6d  %s\n", tc[0], humanize.Comma(int64(tc[1])))
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given variant, or the configured default.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P                 - Pause
  R                 - Restart
  Esc/B             - Leave the game
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play 2048-mini
  t2048 play 2048-huge --seed 42
  t2048 play --config ./my-t2048.yaml --log-file t2048.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := appConfig.UI.DefaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if it cannot be opened - game still works
	var results tui.ResultStore
	store := openStore(logger)
	if store != nil {
		results = store
	}

	_, runErr := tui.Run(game, results, logger, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

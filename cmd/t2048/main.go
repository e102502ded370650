// t2048 is the 2048 tile-merging game for the terminal.
//
// Usage:
//
//	t2048 list                - List board variants
//	t2048 play [variant]      - Play a variant
//	t2048 menu                - Pick variants interactively
//	t2048 scores <variant>    - Show high scores for a variant
//	t2048 autoplay [variant]  - Play random games headlessly
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.t2048/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - Override the configured log level
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Loaded in PersistentPreRunE
	appConfig config.T2048Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `2048 for the terminal on 3x3 to 6x6 boards.

Available commands:
  list      - Show all board variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  scores    - View high scores
  autoplay  - Play random games without a UI

Examples:
  t2048 play
  t2048 play 2048-big
  t2048 menu
  t2048 scores 2048
  t2048 autoplay 2048-mini --games 100 --parallel 4`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadT2048(flagConfig)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
}

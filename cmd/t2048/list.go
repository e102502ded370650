package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every board size that can be played.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range t2048.Variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "--", "----", "-----")

	for _, v := range t2048.Variants {
		marker := ""
		if v.ID == appConfig.UI.DefaultVariant {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-4s  %s%s\n", maxIDLen, v.ID, fmt.Sprintf("%dx%d", v.Size, v.Size), v.Name, marker)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a board.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merge48/merge48/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available board variants",
	Long:  `Shows every board variant registered, built-ins and config file ones.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	applyConfig()

	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print variants
	for _, v := range variants {
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, v.ID, fmt.Sprintf("%dx%d", v.Size, v.Size), v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'merge48 play <id>' to play a board.")
}

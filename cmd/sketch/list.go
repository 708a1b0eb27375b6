package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available sketches",
	Long:  `Shows a list of all sketches registered in the sketchbook.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	sketches := registry.List()

	if len(sketches) == 0 {
		fmt.Println("No sketches available.")
		return
	}

	fmt.Println("Available sketches:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sketches {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print sketches
	for _, s := range sketches {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sketch run <id>' to start a sketch.")
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the sketchbook with a picker menu",
	Long: `Start the sketchbook in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a sketch.
After a run ends, you return to the menu to pick again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select sketch
  Tab          - Session journal
  Q            - Quit

Examples:
  sketch menu
  sketch menu --fps 30
  sketch menu --db ./sessions.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Preload assets once for every run started from the menu.
	library, err := preloadAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}

	// Open the session journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Assets:   library,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the session journal
		if menuResult.WantsJournal {
			goBack, jErr := tui.RunJournal(store, cfg.ScreenW, cfg.ScreenH)
			if jErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", jErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the journal
		}

		sketchID := menuResult.SketchID
		if sketchID == "" {
			break
		}

		// Create sketch instance
		sketch, err := registry.Create(sketchID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating sketch: %v\n", err)
			continue
		}

		// Update seed for each run
		cfg.Seed = time.Now().UnixNano()

		// Run the sketch
		if err := tui.Run(sketch, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running sketch: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}

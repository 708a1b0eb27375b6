package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/sketches/bouncer"
	"github.com/vovakirdan/tui-sketch/internal/sketches/particles"
	"github.com/vovakirdan/tui-sketch/internal/sketches/sprite"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var flagConfig string

var runCmd = &cobra.Command{
	Use:   "run <sketch>",
	Short: "Run a sketch",
	Long: `Start the specified sketch.

Controls:
  WASD/Arrows  - Steer / move the emitter
  Space        - Spawn (burst, launch)
  Mouse click  - Spawn at the pointer
  P            - Pause
  R            - Restart (after a run finishes)
  B/Esc        - Back to menu
  Q/Ctrl+C     - Quit

Examples:
  sketch run particles
  sketch run bouncer --seed 42
  sketch run sprite --config ./my-sprite.yaml
  sketch run particles --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom sketch config YAML")
}

// setConfigPath routes the --config override to the selected sketch.
func setConfigPath(sketchID, path string) {
	switch sketchID {
	case "particles":
		particles.SetConfigPath(path)
	case "bouncer":
		bouncer.SetConfigPath(path)
	case "sprite":
		sprite.SetConfigPath(path)
	}
}

func runRun(cmd *cobra.Command, args []string) {
	sketchID := args[0]

	// Check if sketch exists
	if !registry.Exists(sketchID) {
		fmt.Fprintf(os.Stderr, "Error: unknown sketch %q\n", sketchID)
		fmt.Fprintln(os.Stderr, "Run 'sketch list' to see available sketches.")
		os.Exit(1)
	}

	// Preload assets before anything ticks. A load failure aborts here.
	library, err := preloadAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	setConfigPath(sketchID, flagConfig)

	// Create sketch instance
	sketch, err := registry.Create(sketchID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating sketch: %v\n", err)
		os.Exit(1)
	}

	// Open the session journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - the sketch still runs
		store = nil
	}

	// Run the sketch
	runErr := tui.Run(sketch, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running sketch: %v\n", runErr)
		os.Exit(1)
	}
}

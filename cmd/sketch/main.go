// sketch is a TUI sketchbook for running small generative sketches in the terminal.
//
// Usage:
//
//	sketch list              - List available sketches
//	sketch run <sketch>      - Run a sketch
//	sketch menu              - Start menu to pick sketches interactively
//	sketch serve             - Start SSH server for remote sessions
//	sketch sessions [sketch] - Show the session journal
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.sketch/sessions.db)
//	--mute          - Disable sound playback
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/assets"

	// Import sketches to register them
	_ "github.com/vovakirdan/tui-sketch/internal/sketches/bouncer"
	_ "github.com/vovakirdan/tui-sketch/internal/sketches/particles"
	_ "github.com/vovakirdan/tui-sketch/internal/sketches/sprite"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagMute      bool
	flagAssetsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sketch",
	Short: "TUI Sketchbook - Run generative sketches in your terminal",
	Long: `TUI Sketchbook is a terminal-based playground for small interactive
sketches: particle bursts, bouncing balls, a steerable sprite.

Available commands:
  list     - Show all available sketches
  run      - Run a specific sketch directly
  menu     - Interactive sketch picker menu
  serve    - Start SSH server for remote sessions
  sessions - View the session journal

Examples:
  sketch list
  sketch run particles
  sketch menu
  sketch serve --ssh :2222
  sketch sessions bouncer`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sketch/sessions.db", "Path to session journal database")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound playback")
	rootCmd.PersistentFlags().StringVar(&flagAssetsDir, "assets", "", "Directory with a custom asset manifest (default: embedded)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// preloadAssets loads every manifest asset up front. A load failure is
// fatal for the caller: no sketch starts with a missing handle.
func preloadAssets() (*assets.Library, error) {
	opts := assets.Options{
		Dir:   flagAssetsDir,
		Muted: flagMute,
	}
	lib := assets.NewLibrary(opts)
	if err := lib.Preload(opts); err != nil {
		return nil, err
	}
	return lib, nil
}

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var (
	flagSessionsLimit int
	flagSessionsClear bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [sketch]",
	Short: "Show the session journal",
	Long: `Display recorded sessions from the journal.

With a sketch argument, shows the most recent sessions for that sketch.
Without one, shows aggregate stats for every sketch.

Examples:
  sketch sessions
  sketch sessions particles
  sketch sessions bouncer --limit 20
  sketch sessions bouncer --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 10, "Number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagSessionsClear, "clear", false, "Delete the sketch's recorded sessions")
}

func runSessions(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		showAllStats(store)
		return
	}

	sketchID := args[0]
	if !registry.Exists(sketchID) {
		fmt.Fprintf(os.Stderr, "Error: unknown sketch %q\n", sketchID)
		fmt.Fprintln(os.Stderr, "Run 'sketch list' to see available sketches.")
		os.Exit(1)
	}

	if flagSessionsClear {
		if err := store.ClearSessions(sketchID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared sessions for %q.\n", sketchID)
		return
	}

	showSketchSessions(store, sketchID)
}

// showSketchSessions prints the recent sessions for one sketch plus its
// aggregate line.
func showSketchSessions(store *storage.Store, sketchID string) {
	sketch, err := registry.Create(sketchID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating sketch: %v\n", err)
		os.Exit(1)
	}

	sessions, err := store.RecentSessions(sketchID, flagSessionsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Session Journal - %s\n", sketch.Title())
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'sketch run %s' to fill the journal!\n", sketchID)
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %s\n", "Ticks", "Spawned", "Peak", "Secs", "Date")
	fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %s\n", "-----", "-------", "----", "----", "----")

	// Print sessions
	for _, entry := range sessions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8d  %-8d  %-6d  %-6d  %s\n",
			entry.Ticks, entry.Spawned, entry.PeakEntities, entry.DurationSecs, dateStr)
	}

	fmt.Println()
	stats, err := store.GetSketchStats(sketchID)
	if err == nil && stats.SessionCount > 0 {
		fmt.Printf("Total: %d sessions, %d ticks, peak %d entities\n",
			stats.SessionCount, stats.TotalTicks, stats.MaxPeak)
	}
}

// showAllStats prints one aggregate line per sketch with recorded sessions.
func showAllStats(store *storage.Store) {
	allStats, err := store.GetAllSketchStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(allStats) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sketch run <id>' to fill the journal!")
		return
	}

	ids := make([]string, 0, len(allStats))
	for id := range allStats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Session Journal")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-10s  %-6s  %-8s  %s\n",
		"Sketch", "Runs", "Ticks", "Peak", "AvgSecs", "Last Run")
	fmt.Printf("  %-10s  %-8s  %-10s  %-6s  %-8s  %s\n",
		"------", "----", "-----", "----", "-------", "--------")

	for _, id := range ids {
		stats := allStats[id]
		lastRun := "-"
		if !stats.LastRun.IsZero() {
			lastRun = stats.LastRun.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-10s  %-8d  %-10d  %-6d  %-8.1f  %s\n",
			id, stats.SessionCount, stats.TotalTicks, stats.MaxPeak, stats.AvgDuration, lastRun)
	}
}

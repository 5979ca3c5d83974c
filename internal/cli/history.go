package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pencilmatch/internal/history"
)

var (
	historyDB          string
	historySession     string
	historyLimit       int
	historyCleanupDays int
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded analyses and database statistics",
	Long: `Show the analyses recorded with 'analyze --db', plus aggregate
statistics over the whole database.

Examples:
  # Database-wide statistics
  pencilmatch history --db history.db

  # One session's recent analyses
  pencilmatch history --db history.db --session my-session

  # Drop sessions idle for more than 30 days
  pencilmatch history --db history.db --cleanup 30`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "", "SQLite history database (required)")
	historyCmd.Flags().StringVar(&historySession, "session", "", "show this session's analyses")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum analyses to show")
	historyCmd.Flags().IntVar(&historyCleanupDays, "cleanup", 0, "remove sessions idle for more than this many days")
	historyCmd.MarkFlagRequired("db")
}

// runHistory executes the history command.
func runHistory(cmd *cobra.Command, args []string) error {
	db, err := history.Bootstrap(historyDB)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()
	store := history.NewStore(db)

	if historyCleanupDays > 0 {
		removed, err := store.Cleanup(time.Duration(historyCleanupDays) * 24 * time.Hour)
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
		fmt.Printf("Removed %d stale sessions\n", removed)
	}

	if historySession != "" {
		entries, err := store.History(historySession, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No analyses recorded for session %s\n", historySession)
		}
		for _, e := range entries {
			fmt.Printf("%s  %s (%dx%d)\n", e.AnalysisTime.Format("2006-01-02 15:04"), e.Filename, e.Width, e.Height)
			fmt.Printf("  %d colours requested, %d extracted, %d pencil matches\n",
				e.NumColors, len(e.Palette), len(e.Matches))
			for _, m := range e.Matches {
				fmt.Printf("    %s %s (%s) - dE %.1f, %s\n", m.Brand, m.Name, m.Code, m.Difference, m.Quality)
			}
		}
		fmt.Println()
	}

	stats, err := store.Statistics()
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	fmt.Println("Database statistics:")
	fmt.Printf("  Sessions: %d\n", stats.TotalSessions)
	fmt.Printf("  Uploads:  %d\n", stats.TotalUploads)
	fmt.Printf("  Analyses: %d\n", stats.TotalAnalyses)
	fmt.Printf("  Matches:  %d\n", stats.TotalMatches)
	if len(stats.BrandPopularity) > 0 {
		fmt.Println("  Matches per brand:")
		for brand, count := range stats.BrandPopularity {
			fmt.Printf("    %-16s %d\n", brand, count)
		}
	}
	return nil
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ortosalon/backoffice/internal/config"
	"github.com/ortosalon/backoffice/pkg/db"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display import statistics",
	Long: `Display statistics about imported sales export files.

Shows:
- Total number of imported files
- Total number of imported sale rows
- Total imported amount
- Last import timestamp

Example:
  backoffice stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	slog.Info("Loading configuration")

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	// Open database connection
	slog.Debug("Opening database", "path", cfg.HistoryDBPath)

	conn, err := db.Open(cfg.HistoryDBPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	history := db.NewImportHistory(conn)

	// Get statistics
	stats, err := history.GetStats()
	exitOnError(err, "failed to get statistics")

	// Display statistics
	fmt.Println("\n=== Import Statistics ===")
	fmt.Printf("Imported files:  %d\n", stats.TotalImports)
	fmt.Printf("Imported rows:   %d\n", stats.TotalRows)
	fmt.Printf("Imported amount: %.2f TJS\n", stats.TotalAmount)

	if stats.LastImport.Valid {
		fmt.Printf("Last import:     %s\n", stats.LastImport.String)
	} else {
		fmt.Printf("Last import:     (never)\n")
	}

	fmt.Println()

	slog.Info("Statistics displayed successfully")
}

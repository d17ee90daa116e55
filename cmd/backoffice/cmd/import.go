package cmd

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ortosalon/backoffice/internal/config"
	"github.com/ortosalon/backoffice/internal/importer"
	"github.com/ortosalon/backoffice/pkg/client"
	"github.com/ortosalon/backoffice/pkg/db"
	"github.com/spf13/cobra"
)

var (
	dryRun      bool
	forceImport bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a POS sales export into the ledger",
	Long: `Import a point-of-sale sales export file into the ledger.

This command:
1. Parses the export file and keeps rows under a recognized outlet
2. Refuses files that were already imported (SQLite history)
3. Submits the sales to the ledger API as one batch
4. Records the import in the history database

Example:
  backoffice import sales-export.csv
  backoffice import sales-export.csv --dry-run
  backoffice import sales-export.csv --force`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	// Flags
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Dry run mode (parse and preview only)")
	importCmd.Flags().BoolVar(&forceImport, "force", false, "Import even if the file was imported before")
}

func runImport(cmd *cobra.Command, args []string) {
	filePath := args[0]
	slog.Info("Starting import", "file", filePath, "dry_run", dryRun)

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	business, err := config.LoadBusiness(cfg.BusinessFile)
	exitOnError(err, "failed to load business config")

	// Read and hash the export file
	data, err := os.ReadFile(filePath)
	exitOnError(err, "failed to read export file")

	sum := sha256.Sum256(data)
	fileHash := hex.EncodeToString(sum[:])

	// Parse the export
	sales, err := importer.ParseSalesExport(bytes.NewReader(data), business.Outlets)
	exitOnError(err, "failed to parse export file")

	var total float64
	for _, s := range sales {
		total += s.Amount
	}
	slog.Info("Parsed export", "rows", len(sales), "total", total)

	if dryRun {
		fmt.Printf("[DRY RUN] Would import %d sales (%.2f TJS) from %s\n", len(sales), total, filepath.Base(filePath))
		for _, s := range sales {
			fmt.Printf("  %s  %-24s %10.2f\n", s.Date, s.Outlet, s.Amount)
		}
		return
	}

	// Open import history database
	slog.Debug("Opening database", "path", cfg.HistoryDBPath)
	conn, err := db.Open(cfg.HistoryDBPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	history := db.NewImportHistory(conn)

	imported, err := history.IsImported(fileHash)
	exitOnError(err, "failed to check import history")
	if imported && !forceImport {
		fmt.Fprintf(os.Stderr, "Error: %s was already imported (use --force to re-import)\n", filepath.Base(filePath))
		os.Exit(1)
	}

	// Submit to the ledger API
	user, pass := getCredentials()
	apiClient := client.New(client.Config{
		APIURL:  cfg.APIURL,
		Timeout: 30 * time.Second,
	})
	exitOnError(apiClient.Login(user, pass), "failed to log in")

	rows := make([]client.SaleRow, len(sales))
	for i, s := range sales {
		rows[i] = client.SaleRow{Outlet: s.Outlet, Date: s.Date, Amount: s.Amount}
	}

	count, err := apiClient.ImportSales(rows)
	exitOnError(err, "failed to import sales")

	// Record import history
	if err := history.RecordImport(db.ImportRecord{
		FileHash:    fileHash,
		FileName:    filepath.Base(filePath),
		RowCount:    count,
		TotalAmount: total,
	}); err != nil {
		slog.Error("Failed to record import", "file", filePath, "error", err)
	}

	fmt.Printf("Imported %d sales (%.2f TJS) from %s\n", count, total, filepath.Base(filePath))

	slog.Info("Import completed", "rows", count, "total", total)
}

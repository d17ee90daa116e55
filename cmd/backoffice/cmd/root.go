// Package cmd provides CLI commands for backoffice.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	debug    bool
	username string
	password string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Import and report on back-office ledger data",
	Long: `backoffice is a CLI tool for the Ortosalon back-office ledger.

It supports:
- Importing POS sales export files into the ledger
- Preventing duplicate imports with SQLite history
- Period summary and supplier debt reports
- Dry-run mode for testing

Example:
  backoffice import sales-export.csv
  backoffice report --from 2026-01-01 --to 2026-01-31
  backoffice stats`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "ledger account username (default $LEDGER_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "ledger account password (default $LEDGER_PASSWORD)")

	// Add subcommands
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// Helper function to resolve login credentials from flags or environment.
func getCredentials() (string, string) {
	user := username
	if user == "" {
		user = os.Getenv("LEDGER_USERNAME")
	}
	pass := password
	if pass == "" {
		pass = os.Getenv("LEDGER_PASSWORD")
	}
	return user, pass
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/ortosalon/backoffice/internal/config"
	"github.com/ortosalon/backoffice/pkg/client"
	"github.com/spf13/cobra"
)

var (
	dateFrom string
	dateTo   string
	withDebt bool
)

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Display a period summary report",
	Long: `Display a financial summary for a date range.

Shows revenue, profit, expenses, purchases, supplier payments, salary
payments and the resulting balance. With --debt it also shows the
supplier debt breakdown by country.

Example:
  backoffice report --from 2026-01-01 --to 2026-01-31
  backoffice report --from 2026-01-01 --to 2026-01-31 --debt`,
	Run: runReport,
}

func init() {
	// Flags
	reportCmd.Flags().StringVar(&dateFrom, "from", "", "Start date (YYYY-MM-DD) (required)")
	reportCmd.Flags().StringVar(&dateTo, "to", "", "End date (YYYY-MM-DD) (required)")
	reportCmd.Flags().BoolVar(&withDebt, "debt", false, "Include supplier debt breakdown")

	reportCmd.MarkFlagRequired("from")
	reportCmd.MarkFlagRequired("to")
}

func runReport(cmd *cobra.Command, args []string) {
	slog.Info("Fetching report", "from", dateFrom, "to", dateTo)

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	user, pass := getCredentials()
	apiClient := client.New(client.Config{
		APIURL:  cfg.APIURL,
		Timeout: 30 * time.Second,
	})
	exitOnError(apiClient.Login(user, pass), "failed to log in")

	summary, err := apiClient.Summary(dateFrom, dateTo)
	exitOnError(err, "failed to fetch summary")

	fmt.Printf("\n=== Summary %s .. %s ===\n", summary.From, summary.To)
	fmt.Printf("Revenue:           %12.2f TJS\n", summary.Revenue)
	fmt.Printf("Profit:            %12.2f TJS\n", summary.Profit)
	fmt.Printf("Expenses:          %12.2f TJS\n", summary.Expenses)
	fmt.Printf("Purchases:         %12.2f TJS\n", summary.Purchases)
	fmt.Printf("Supplier payments: %12.2f TJS\n", summary.SupplierPayments)
	fmt.Printf("Salary payments:   %12.2f TJS\n", summary.SalaryPayments)
	fmt.Printf("Balance:           %12.2f TJS\n", summary.Balance)

	if withDebt {
		debt, err := apiClient.DebtSummary()
		exitOnError(err, "failed to fetch debt summary")

		countries := make([]string, 0, len(debt.ByCountry))
		for code := range debt.ByCountry {
			countries = append(countries, code)
		}
		sort.Strings(countries)

		fmt.Println("\n=== Supplier Debt ===")
		for _, code := range countries {
			entry := debt.ByCountry[code]
			fmt.Printf("%-4s %12.2f TJS  %12.2f USD\n", code, entry.Debt, entry.DebtUSD)
		}
		fmt.Printf("%-4s %12.2f TJS  %12.2f USD\n", "All", debt.Total, debt.TotalUSD)
	}

	fmt.Println()
}

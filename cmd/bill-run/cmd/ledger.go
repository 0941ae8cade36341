package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shunichi-ikebuchi/billing-system/pkg/config"
	"github.com/shunichi-ikebuchi/billing-system/pkg/db"
	"github.com/shunichi-ikebuchi/billing-system/pkg/pathutil"
	"github.com/spf13/cobra"
)

// ledgerCmd represents the ledger command.
var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Display all issued invoices",
	Long: `Display every invoice recorded in the ledger.

Shows the invoice number, billing date, company, and amount of each
persisted entry, oldest first.

Example:
  bill-run ledger`,
	Run: runLedger,
}

func runLedger(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	paths := pathutil.New(pathutil.Config{
		BillingRoot:  cfg.BillingRoot,
		DatabasePath: cfg.DBPath,
	})

	slog.Debug("opening database", "path", paths.DatabasePath())

	conn, err := db.Open(paths.DatabasePath())
	exitOnError(err, "failed to open ledger database")
	defer conn.Close()

	ledger := db.NewBillingLedger(conn)

	entries, err := ledger.ListAll()
	exitOnError(err, "failed to list ledger entries")

	fmt.Println("Billing Ledger")
	fmt.Println("==========================================")
	if len(entries) == 0 {
		fmt.Println("No invoices issued yet.")
		return
	}

	for _, entry := range entries {
		fmt.Printf("%-12s %04d-%02d-%02d  %-20s %10s\n",
			entry.InvoiceNumber,
			entry.Year, entry.Month, entry.Day,
			entry.Company,
			entry.AmountDisplay,
		)
	}
	fmt.Printf("\nTotal: %d invoices\n", len(entries))
}

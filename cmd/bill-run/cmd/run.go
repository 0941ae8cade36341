package cmd

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunichi-ikebuchi/billing-system/pkg/billrun"
	"github.com/shunichi-ikebuchi/billing-system/pkg/config"
	"github.com/shunichi-ikebuchi/billing-system/pkg/db"
	"github.com/shunichi-ikebuchi/billing-system/pkg/dateutil"
	"github.com/shunichi-ikebuchi/billing-system/pkg/pathutil"
	"github.com/shunichi-ikebuchi/billing-system/pkg/qrpay"
	"github.com/shunichi-ikebuchi/billing-system/pkg/timesheet"
	"github.com/spf13/cobra"
)

var (
	companyFlag string
	dateFlag    string
	shuffleFlag bool
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bill all companies with a time log for the period",
	Long: `Run the billing pipeline for one period.

This command:
1. Reads per-company CSV time logs from {BILLING_ROOT}/data/YYYY-MM
2. Computes net, VAT and total amounts from logged minutes
3. Resolves the invoice number (reused on re-runs, fresh otherwise)
4. Renders the EPC payment QR code to {BILLING_ROOT}/out/YYYY-MM
5. Records the invoice in the SQLite ledger, replacing a prior entry

Example:
  bill-run run --date 2024-07-31
  bill-run run --company Acme --date 2024-07-31
  bill-run run --shuffle`,
	Run: runRun,
}

func init() {
	// Flags
	runCmd.Flags().StringVar(&companyFlag, "company", "", "Bill a single company instead of all")
	runCmd.Flags().StringVar(&dateFlag, "date", "", "Billing date (YYYY-MM-DD), default last day of current month")
	runCmd.Flags().BoolVar(&shuffleFlag, "shuffle", false, "Randomize company processing order")
}

func runRun(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	bill, err := config.LoadBilling(cfg.BillingFile)
	exitOnError(err, "failed to load billing file")
	exitOnError(bill.Validate(), "invalid billing file")

	paths := pathutil.New(pathutil.Config{
		BillingRoot:  cfg.BillingRoot,
		DatabasePath: cfg.DBPath,
	})

	billDate := dateutil.ParseOrDefault(dateFlag, time.Now())
	label := dateutil.PeriodLabel(billDate)
	dueDate := dateutil.DueDate(billDate)

	slog.Info("starting billing run",
		"period", label,
		"bill_date", billDate.Format("2006-01-02"),
		"due_date", dueDate.Format("2006-01-02"))

	// Collect the companies to bill
	var companies []string
	if companyFlag != "" {
		companies = []string{companyFlag}
	} else {
		companies, err = timesheet.FindCompanies(paths.DataDir(label))
		exitOnError(err, "failed to list companies")
	}

	if len(companies) == 0 {
		slog.Info("no time logs found for period", "dir", paths.DataDir(label))
		return
	}

	// Open the ledger; a storage failure here is fatal to the whole run
	conn, err := db.Open(paths.DatabasePath())
	exitOnError(err, "failed to open ledger database")
	defer conn.Close()

	fees := make(map[string]decimal.Decimal, len(bill.Companies))
	for name, company := range bill.Companies {
		fees[name] = company.HourlyFee
	}

	runner := &billrun.Runner{
		Ledger: db.NewBillingLedger(conn),
		Paths:  paths,
		Bank: qrpay.BankDetails{
			BIC:  bill.Bank.BIC,
			IBAN: bill.Bank.IBAN,
			Name: bill.Bank.Name,
		},
		Fees:    fees,
		QRColor: bill.QR.Color,
	}

	order := billrun.IdentityOrder
	if shuffleFlag {
		order = billrun.ShuffleOrder(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	results, runErr := runner.Run(companies, billDate, order)

	fmt.Printf("\nBilling run %s (due %s)\n", label, dueDate.Format("02.01.2006"))
	fmt.Println("==========================================")
	for _, result := range results {
		if result.Skipped {
			fmt.Printf("%-20s skipped (no logged time)\n", result.Company)
			continue
		}
		fmt.Printf("%-20s %s  net %s  vat %s  total %s  qr %s\n",
			result.Company,
			result.InvoiceNumber,
			result.Amounts.Net.StringFixedBank(2),
			result.Amounts.VAT.StringFixedBank(2),
			result.AmountDisplay,
			result.QRPath,
		)
	}

	exitOnError(runErr, "billing run aborted")
}

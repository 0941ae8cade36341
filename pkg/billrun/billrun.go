// Package billrun drives a billing run: for each company it turns the
// period's time log into amounts, resolves the invoice number against the
// ledger, renders the payment QR code, and persists the ledger entry.
package billrun

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunichi-ikebuchi/billing-system/pkg/billing"
	"github.com/shunichi-ikebuchi/billing-system/pkg/db"
	"github.com/shunichi-ikebuchi/billing-system/pkg/dateutil"
	"github.com/shunichi-ikebuchi/billing-system/pkg/pathutil"
	"github.com/shunichi-ikebuchi/billing-system/pkg/qrpay"
	"github.com/shunichi-ikebuchi/billing-system/pkg/timesheet"
)

// Runner executes the per-company billing pipeline. All collaborators are
// injected; the runner owns no global state.
type Runner struct {
	Ledger *db.BillingLedger
	Paths  *pathutil.PathResolver
	Bank   qrpay.BankDetails
	// Fees maps company names to their hourly fee.
	Fees map[string]decimal.Decimal
	// QRColor is the stroke color for payment-code modules.
	QRColor string
	Logger  *slog.Logger
}

// Result is the outcome of billing one company.
type Result struct {
	Company       string
	InvoiceNumber string
	Sequence      int
	Amounts       billing.Amounts
	AmountDisplay string
	QRPath        string
	// Skipped is set when the company logged no minutes for the period.
	Skipped bool
}

// ProcessCompany bills a single company for the period of billDate.
// A company with zero logged minutes is skipped without touching the ledger.
func (r *Runner) ProcessCompany(company string, billDate time.Time) (*Result, error) {
	fee, ok := r.Fees[company]
	if !ok {
		return nil, fmt.Errorf("no hourly fee configured for company %q", company)
	}

	label := dateutil.PeriodLabel(billDate)

	records, err := timesheet.ReadFile(r.Paths.TimeLogPath(label, company))
	if err != nil {
		return nil, err
	}

	minutes := timesheet.TotalMinutes(records)
	if minutes == 0 {
		r.logger().Info("no logged minutes, skipping", "company", company, "period", label)
		return &Result{Company: company, Skipped: true}, nil
	}

	amounts := billing.ComputeAmounts(minutes, fee)
	display := billing.FormatAmount(amounts.Total)

	period := db.Period{Year: billDate.Year(), Month: int(billDate.Month()), Day: billDate.Day()}

	invoiceNumber, sequence, err := r.Ledger.ResolveInvoiceNumber(company, period, label)
	if err != nil {
		return nil, err
	}

	r.logger().Debug("resolved invoice number",
		"company", company, "invoice_number", invoiceNumber, "sequence", sequence)

	svgData, err := qrpay.Render(r.Bank, display, billDate, invoiceNumber, r.QRColor)
	if err != nil {
		return nil, err
	}

	if err := r.Paths.EnsureDir(r.Paths.OutputDir(label)); err != nil {
		return nil, err
	}
	qrPath := r.Paths.QRCodePath(label, company)
	if err := os.WriteFile(qrPath, svgData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write payment code: %w", err)
	}

	// Persist only after the payment code exists; a write failure here must
	// reach the caller so no invoice goes out without a ledger row.
	entry := db.LedgerEntry{
		Year:          period.Year,
		Month:         period.Month,
		Day:           period.Day,
		Company:       company,
		InvoiceNumber: invoiceNumber,
		Sequence:      sequence,
		Amount:        amounts.Total,
		AmountDisplay: display,
	}
	if err := r.Ledger.Upsert(entry); err != nil {
		return nil, err
	}

	return &Result{
		Company:       company,
		InvoiceNumber: invoiceNumber,
		Sequence:      sequence,
		Amounts:       amounts,
		AmountDisplay: display,
		QRPath:        qrPath,
	}, nil
}

// Run bills all companies in the order given by the strategy. A failure for
// one company is logged and the loop moves on, except for ledger storage
// failures, which abort the run: numbering guarantees cannot be upheld on a
// broken ledger.
func (r *Runner) Run(companies []string, billDate time.Time, order OrderStrategy) ([]Result, error) {
	if order == nil {
		order = IdentityOrder
	}

	var results []Result
	for _, company := range order(companies) {
		r.logger().Info("processing company", "company", company)

		result, err := r.ProcessCompany(company, billDate)
		if err != nil {
			if errors.Is(err, db.ErrLedgerIO) {
				return results, err
			}
			r.logger().Error("failed to bill company, continuing", "company", company, "error", err)
			continue
		}

		results = append(results, *result)
	}

	return results, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

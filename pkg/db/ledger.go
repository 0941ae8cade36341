package db

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// Period identifies a billing cycle. Year and Month scope invoice-number
// allocation; Day is used for entry timestamping only.
type Period struct {
	Year  int
	Month int
	Day   int
}

// LedgerEntry represents one issued invoice.
type LedgerEntry struct {
	ID            int64
	Year          int
	Month         int
	Day           int
	Company       string
	InvoiceNumber string
	Sequence      int
	Amount        decimal.Decimal
	AmountDisplay string
}

// BillingLedger manages invoice records. It guarantees that sequence numbers
// are unique within a billing period and that re-running the pipeline for the
// same company and period yields the same invoice number.
//
// Numbering is scoped by year AND month. The predecessor system matched the
// calendar month alone, so January 2024 and January 2025 shared one sequence
// space; that was almost certainly an oversight and is not reproduced here.
type BillingLedger struct {
	conn *Connection
}

// NewBillingLedger creates a BillingLedger on an open connection.
func NewBillingLedger(conn *Connection) *BillingLedger {
	return &BillingLedger{conn: conn}
}

// FindActive looks up the issued invoice for a company in a period.
// Company names are treated as opaque untrusted strings and only ever bound
// as query parameters. Returns (nil, nil) when no entry exists. If multiple
// rows exist, which the replace invariant rules out, the oldest wins.
func (l *BillingLedger) FindActive(company string, period Period) (*LedgerEntry, error) {
	query := `
		SELECT id, year, month, day, company, invoice_number, sequence, amount, amount_display
		FROM bill_entry
		WHERE company = ? AND year = ? AND month = ?
		ORDER BY id
		LIMIT 1
	`

	entry, err := scanEntry(l.conn.QueryRow(query, company, period.Year, period.Month))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find active entry: %v", ErrLedgerIO, err)
	}

	return entry, nil
}

// NextSequence allocates the next free sequence number for a period: the
// maximum sequence among all entries of that year and month, plus one (1 when
// the period is empty). The invoice number is the base label followed by the
// two-digit zero-padded sequence, e.g. "2024-07" + 1 -> "2024-0701".
func (l *BillingLedger) NextSequence(period Period, base string) (string, int, error) {
	query := `
		SELECT COALESCE(MAX(sequence), 0)
		FROM bill_entry
		WHERE year = ? AND month = ?
	`

	var maxSeq int
	if err := l.conn.QueryRow(query, period.Year, period.Month).Scan(&maxSeq); err != nil {
		return "", 0, fmt.Errorf("%w: failed to scan max sequence: %v", ErrLedgerIO, err)
	}

	sequence := maxSeq + 1
	return FormatInvoiceNumber(base, sequence), sequence, nil
}

// ResolveInvoiceNumber returns the invoice number for a company in a period.
// An already-issued invoice keeps its number unchanged across re-runs;
// otherwise a fresh sequence number is allocated.
func (l *BillingLedger) ResolveInvoiceNumber(company string, period Period, base string) (string, int, error) {
	existing, err := l.FindActive(company, period)
	if err != nil {
		return "", 0, err
	}
	if existing != nil {
		return existing.InvoiceNumber, existing.Sequence, nil
	}

	return l.NextSequence(period, base)
}

// Upsert persists an entry, replacing any prior entry for the same company
// and period in one transaction. Entries are never updated in place.
func (l *BillingLedger) Upsert(entry LedgerEntry) error {
	err := l.conn.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`DELETE FROM bill_entry WHERE company = ? AND year = ? AND month = ?`,
			entry.Company, entry.Year, entry.Month,
		)
		if err != nil {
			return fmt.Errorf("failed to delete superseded entries: %w", err)
		}

		_, err = tx.Exec(
			`INSERT INTO bill_entry (year, month, day, company, invoice_number, sequence, amount, amount_display)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.Year, entry.Month, entry.Day, entry.Company,
			entry.InvoiceNumber, entry.Sequence,
			entry.Amount.String(), entry.AmountDisplay,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("%w: failed to upsert entry for %q: %v", ErrLedgerIO, entry.Company, err)
	}

	return nil
}

// ListAll retrieves every ledger entry, oldest first.
func (l *BillingLedger) ListAll() ([]LedgerEntry, error) {
	query := `
		SELECT id, year, month, day, company, invoice_number, sequence, amount, amount_display
		FROM bill_entry
		ORDER BY id
	`

	rows, err := l.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list entries: %v", ErrLedgerIO, err)
	}
	defer rows.Close()

	var entries []LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan entry: %v", ErrLedgerIO, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate entries: %v", ErrLedgerIO, err)
	}

	return entries, nil
}

// FormatInvoiceNumber builds an invoice number from the period base label and
// a sequence number, zero-padded to two digits.
func FormatInvoiceNumber(base string, sequence int) string {
	return fmt.Sprintf("%s%02d", base, sequence)
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(s scanner) (*LedgerEntry, error) {
	var entry LedgerEntry
	var amountStr string

	if err := s.Scan(
		&entry.ID,
		&entry.Year,
		&entry.Month,
		&entry.Day,
		&entry.Company,
		&entry.InvoiceNumber,
		&entry.Sequence,
		&amountStr,
		&entry.AmountDisplay,
	); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amountStr, err)
	}
	entry.Amount = amount

	return &entry, nil
}

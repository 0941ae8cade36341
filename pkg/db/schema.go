// Package db provides SQLite storage for the billing ledger: the durable
// record of issued invoices that backs invoice-number allocation.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Billing ledger
-- One row per issued invoice. Recomputing an invoice for the same company
-- and period replaces the row instead of adding a duplicate.
CREATE TABLE IF NOT EXISTS bill_entry (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    year           INTEGER NOT NULL,
    month          INTEGER NOT NULL,          -- 1-12
    day            INTEGER NOT NULL,          -- 1-31
    company        TEXT NOT NULL,
    invoice_number TEXT NOT NULL,
    sequence       INTEGER NOT NULL,          -- per-period numeric component
    amount         TEXT NOT NULL,             -- decimal total, serialized
    amount_display TEXT NOT NULL              -- formatted two-decimal string
);

CREATE INDEX IF NOT EXISTS idx_bill_entry_period
    ON bill_entry(year, month);

CREATE INDEX IF NOT EXISTS idx_bill_entry_company
    ON bill_entry(company, year, month);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}

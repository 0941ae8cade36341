// Package pathutil provides centralized path management for billing data,
// generated output, and the ledger database.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver manages paths below the billing root directory.
//
// Layout:
//
//	{root}/data/2024-07/Acme.csv   time logs, one file per company
//	{root}/out/2024-07/Acme.svg    rendered payment QR codes
//	{root}/billing.db              ledger database (overridable)
type PathResolver struct {
	billingRoot  string
	databasePath string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// BillingRoot is the root directory for billing data (e.g. ~/billing)
	BillingRoot string
	// DatabasePath is the path to the SQLite ledger database
	DatabasePath string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {BillingRoot}/billing.db
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.BillingRoot, "billing.db")
	}

	return &PathResolver{
		billingRoot:  config.BillingRoot,
		databasePath: dbPath,
	}
}

// BillingRoot returns the billing root directory.
func (p *PathResolver) BillingRoot() string {
	return p.billingRoot
}

// DatabasePath returns the ledger database file path.
func (p *PathResolver) DatabasePath() string {
	return p.databasePath
}

// DataDir returns the time-log directory for a period label (YYYY-MM).
func (p *PathResolver) DataDir(periodLabel string) string {
	return filepath.Join(p.billingRoot, "data", periodLabel)
}

// OutputDir returns the output directory for a period label (YYYY-MM).
func (p *PathResolver) OutputDir(periodLabel string) string {
	return filepath.Join(p.billingRoot, "out", periodLabel)
}

// TimeLogPath returns the CSV time-log path for a company in a period.
func (p *PathResolver) TimeLogPath(periodLabel, company string) string {
	return filepath.Join(p.DataDir(periodLabel), company+".csv")
}

// QRCodePath returns the payment QR SVG path for a company in a period.
func (p *PathResolver) QRCodePath(periodLabel, company string) string {
	return filepath.Join(p.OutputDir(periodLabel), company+".svg")
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// IsDir checks if a path is a directory.
func (p *PathResolver) IsDir(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

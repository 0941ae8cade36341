package pathutil

import (
	"path/filepath"
	"testing"
)

func TestResolverDefaults(t *testing.T) {
	p := New(Config{BillingRoot: "/home/erika/billing"})

	if got := p.DatabasePath(); got != filepath.Join("/home/erika/billing", "billing.db") {
		t.Errorf("DatabasePath = %q", got)
	}
	if got := p.DataDir("2024-07"); got != filepath.Join("/home/erika/billing", "data", "2024-07") {
		t.Errorf("DataDir = %q", got)
	}
	if got := p.OutputDir("2024-07"); got != filepath.Join("/home/erika/billing", "out", "2024-07") {
		t.Errorf("OutputDir = %q", got)
	}
	if got := p.TimeLogPath("2024-07", "Acme"); got != filepath.Join("/home/erika/billing", "data", "2024-07", "Acme.csv") {
		t.Errorf("TimeLogPath = %q", got)
	}
	if got := p.QRCodePath("2024-07", "Acme"); got != filepath.Join("/home/erika/billing", "out", "2024-07", "Acme.svg") {
		t.Errorf("QRCodePath = %q", got)
	}
}

func TestResolverDatabaseOverride(t *testing.T) {
	p := New(Config{BillingRoot: "/home/erika/billing", DatabasePath: "/var/lib/billing.db"})

	if got := p.DatabasePath(); got != "/var/lib/billing.db" {
		t.Errorf("DatabasePath = %q", got)
	}
}

func TestEnsureDir(t *testing.T) {
	p := New(Config{BillingRoot: t.TempDir()})

	dir := p.OutputDir("2024-07")
	if err := p.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}
	if !p.IsDir(dir) {
		t.Errorf("expected %q to be a directory", dir)
	}
}

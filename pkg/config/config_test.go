package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

const testBillingYAML = `bank:
  bic: GENODEF1M03
  iban: DE02120300000000202051
  name: Erika Musterfrau
issuer:
  company: Musterfrau IT
  name: Erika Musterfrau
  street: Beispielweg 1
  city: Berlin
  country: Deutschland
  postcode: "10115"
  email: erika@example.com
  vat_id: DE123456789
  tax_id: 12/345/67890
qr:
  color: "#1a1a2e"
companies:
  Acme:
    hourly_fee: "100"
    email: billing@acme.example
  Globex:
    hourly_fee: "95.50"
    email: invoices@globex.example
`

func writeBillingFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBilling(t *testing.T) {
	billing, err := LoadBilling(writeBillingFile(t, testBillingYAML))
	if err != nil {
		t.Fatalf("LoadBilling returned error: %v", err)
	}

	if billing.Bank.BIC != "GENODEF1M03" {
		t.Errorf("bank.bic = %q", billing.Bank.BIC)
	}
	if billing.Bank.IBAN != "DE02120300000000202051" {
		t.Errorf("bank.iban = %q", billing.Bank.IBAN)
	}
	if billing.Issuer.VATID != "DE123456789" {
		t.Errorf("issuer.vat_id = %q", billing.Issuer.VATID)
	}
	if billing.QR.Color != "#1a1a2e" {
		t.Errorf("qr.color = %q", billing.QR.Color)
	}

	acme, ok := billing.Companies["Acme"]
	if !ok {
		t.Fatal("company Acme missing")
	}
	if !acme.HourlyFee.Equal(decimal.RequireFromString("100")) {
		t.Errorf("Acme hourly fee = %s", acme.HourlyFee)
	}

	globex := billing.Companies["Globex"]
	if !globex.HourlyFee.Equal(decimal.RequireFromString("95.50")) {
		t.Errorf("Globex hourly fee = %s", globex.HourlyFee)
	}

	if err := billing.Validate(); err != nil {
		t.Errorf("Validate returned error: %v", err)
	}
}

func TestLoadBillingDefaultColor(t *testing.T) {
	yaml := `bank:
  bic: GENODEF1M03
  iban: DE02120300000000202051
  name: Erika Musterfrau
companies:
  Acme:
    hourly_fee: "100"
`
	billing, err := LoadBilling(writeBillingFile(t, yaml))
	if err != nil {
		t.Fatalf("LoadBilling returned error: %v", err)
	}
	if billing.QR.Color != "#000000" {
		t.Errorf("default qr.color = %q, expected #000000", billing.QR.Color)
	}
}

func TestLoadBillingBadFee(t *testing.T) {
	yaml := `bank:
  bic: GENODEF1M03
  iban: DE02120300000000202051
  name: Erika Musterfrau
companies:
  Acme:
    hourly_fee: "hundred"
`
	if _, err := LoadBilling(writeBillingFile(t, yaml)); err == nil {
		t.Error("expected error for unparseable hourly fee")
	}
}

func TestLoadBillingMissing(t *testing.T) {
	if _, err := LoadBilling(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing billing file")
	}
}

func TestValidateMissingFields(t *testing.T) {
	billing := &Billing{}
	if err := billing.Validate(); err == nil {
		t.Error("expected validation error for empty billing config")
	}
}

// Package config provides configuration management for the billing system.
// Paths and flags come from environment variables and .env files; the billing
// data itself (bank details, issuer, per-company rates) comes from a YAML
// file referenced by the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration taken from the environment.
type Config struct {
	// BillingRoot is the root directory for billing data.
	BillingRoot string
	// DBPath is the ledger database path (optional).
	DBPath string
	// BillingFile is the path to the billing YAML file.
	BillingFile string
	Debug       bool
}

// BankDetails is the beneficiary bank account printed into payment codes.
type BankDetails struct {
	BIC  string `yaml:"bic"`
	IBAN string `yaml:"iban"`
	Name string `yaml:"name"`
}

// Issuer is the invoice issuer's letterhead and tax data.
type Issuer struct {
	Company  string `yaml:"company"`
	Name     string `yaml:"name"`
	Street   string `yaml:"street"`
	City     string `yaml:"city"`
	Country  string `yaml:"country"`
	Postcode string `yaml:"postcode"`
	Email    string `yaml:"email"`
	VATID    string `yaml:"vat_id"`
	TaxID    string `yaml:"tax_id"`
}

// Company is the billing configuration of one customer.
type Company struct {
	HourlyFee decimal.Decimal `yaml:"-"`
	RawFee    string          `yaml:"hourly_fee"`
	Email     string          `yaml:"email"`
}

// QRConfig controls payment-code rendering.
type QRConfig struct {
	// Color is the stroke color of the dark QR modules, e.g. "#1a1a2e".
	Color string `yaml:"color"`
}

// Billing represents the billing YAML file.
type Billing struct {
	Bank      BankDetails        `yaml:"bank"`
	Issuer    Issuer             `yaml:"issuer"`
	QR        QRConfig           `yaml:"qr"`
	Companies map[string]Company `yaml:"companies"`
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		BillingRoot: getEnvOrDefault("BILLING_ROOT", "."),
		DBPath:      os.Getenv("BILLING_DB_PATH"),
		BillingFile: getEnvOrDefault("BILLING_CONFIG", "config.yaml"),
		Debug:       os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// LoadBilling reads and parses the billing YAML file and resolves per-company
// hourly fees into exact decimals.
func LoadBilling(path string) (*Billing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read billing file: %w", err)
	}

	var billing Billing
	if err := yaml.Unmarshal(data, &billing); err != nil {
		return nil, fmt.Errorf("failed to parse billing YAML: %w", err)
	}

	if billing.QR.Color == "" {
		billing.QR.Color = "#000000"
	}

	for name, company := range billing.Companies {
		fee, err := decimal.NewFromString(company.RawFee)
		if err != nil {
			return nil, fmt.Errorf("invalid hourly_fee %q for company %q: %w", company.RawFee, name, err)
		}
		company.HourlyFee = fee
		billing.Companies[name] = company
	}

	return &billing, nil
}

// Validate checks that the billing file carries everything a run needs.
func (b *Billing) Validate() error {
	var missing []string

	if b.Bank.BIC == "" {
		missing = append(missing, "bank.bic")
	}
	if b.Bank.IBAN == "" {
		missing = append(missing, "bank.iban")
	}
	if b.Bank.Name == "" {
		missing = append(missing, "bank.name")
	}
	if len(b.Companies) == 0 {
		missing = append(missing, "companies")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your billing YAML file", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package cmd provides CLI commands for bill-run.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bill-run",
	Short: "Generate freelance invoices from logged work time",
	Long: `bill-run is a CLI tool that turns per-company CSV time logs into
invoice data: net/VAT/total amounts, a unique sequential invoice number
per billing period, and an EPC payment QR code as SVG.

It supports:
- Batch runs over all companies with a time log for the period
- Idempotent invoice numbering backed by a SQLite ledger
- Replacing an invoice on re-runs instead of duplicating it
- Randomized processing order so numbers don't leak the company list

Example:
  bill-run run --date 2024-07-31
  bill-run run --company Acme
  bill-run ledger`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ledgerCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}

// Package main is the entry point for bill-run CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/billing-system/cmd/bill-run/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

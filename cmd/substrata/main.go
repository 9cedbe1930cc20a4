// Package main provides the substrata CLI for building tokens.json from CSS custom properties.
package main

import (
	"os"

	"github.com/substrata-tokens/substrata/internal/report"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		report.NewReporter(os.Stderr, false).PrintError(err)
		os.Exit(1)
	}
}

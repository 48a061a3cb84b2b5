package sampledata

import (
	"fmt"
	"os"

	"github.com/okian/jobpulse/pkg/logger"
)

// SetupLogging initializes the global logger at the given level.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the sample data tool.
func ShowHelp() {
	os.Stdout.WriteString(`jobpulse Sample Data Tool
=========================

Generates a synthetic job applications workbook for the dashboard.

Usage:
  go run ./cmd/sample-data [options]

Options:
  -rows int
        Number of applications to generate (default 120)
  -seed int
        Random seed (default 42)
  -days int
        Spread application dates over this many days (default 365)
  -output string
        Output file, .xlsx or .csv (default "applications.xlsx")
  -verify string
        Base URL of a running dashboard to verify, e.g. http://localhost:8050
  -timeout duration
        HTTP request timeout for verification (default 10s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Write applications.xlsx with defaults
  go run ./cmd/sample-data

  # CSV with 500 rows
  go run ./cmd/sample-data -rows 500 -output data/applications.csv
`)
}

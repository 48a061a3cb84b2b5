package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/jobpulse/internal/sampledata"
	"github.com/okian/jobpulse/pkg/logger"
)

// Default configuration constants.
const (
	defaultRows    = 120
	defaultSeed    = 42
	defaultDays    = 365
	defaultTimeout = 10 * time.Second
	runTimeout     = 2 * time.Minute
)

func main() {
	var (
		rows    = flag.Int("rows", defaultRows, "Number of applications to generate")
		seed    = flag.Int64("seed", defaultSeed, "Random seed")
		days    = flag.Int("days", defaultDays, "Spread application dates over this many days")
		output  = flag.String("output", "applications.xlsx", "Output file (.xlsx or .csv)")
		verify  = flag.String("verify", "", "Base URL of a running dashboard to verify")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	if err := sampledata.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg := &sampledata.Config{
		Rows:      *rows,
		Seed:      *seed,
		Span:      time.Duration(*days) * 24 * time.Hour,
		Output:    *output,
		VerifyURL: *verify,
		Timeout:   *timeout,
		Logger:    logger.Get(),
	}

	if _, err := sampledata.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "sample data generation failed", logger.Error(err))
		os.Exit(1)
	}
}

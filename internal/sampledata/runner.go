package sampledata

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/jobpulse/pkg/logger"
)

// Run generates the workbook, writes it and optionally verifies a running
// dashboard against it.
func Run(ctx context.Context, cfg *Config) (Stats, error) {
	start := time.Now()
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("sampledata")

	log.Info(ctx, "generating sample applications",
		logger.Int("rows", cfg.Rows),
		logger.Any("seed", cfg.Seed),
		logger.String("output", cfg.Output))

	// Step 1: Generate rows
	rows := Generate(cfg)
	stats := Summarize(rows)

	// Step 2: Write file
	if err := Write(cfg.Output, rows); err != nil {
		return stats, fmt.Errorf("write failed: %w", err)
	}
	log.Info(ctx, "sample file written",
		logger.String("output", cfg.Output),
		logger.Int("rows", stats.Rows),
		logger.Int("interviewed", stats.Interviewed),
		logger.Int("offered", stats.Offered),
		logger.Int("untitled", stats.Untitled))

	// Step 3: Verify a running dashboard
	if cfg.VerifyURL != "" {
		summary, err := Verify(ctx, cfg.VerifyURL, cfg.Timeout, stats.Rows)
		if err != nil {
			return stats, fmt.Errorf("verification failed: %w", err)
		}
		log.Info(ctx, "dashboard verified",
			logger.String("url", cfg.VerifyURL),
			logger.Int("total", summary.Total),
			logger.String("interviewRate", summary.InterviewRateText))
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

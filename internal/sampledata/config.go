package sampledata

import (
	"time"

	"github.com/okian/jobpulse/pkg/logger"
)

// Config holds configuration for sample workbook generation.
type Config struct {
	Rows      int           // Number of applications to generate
	Seed      int64         // Random seed; equal seeds give equal files
	Span      time.Duration // How far back application dates may go
	Now       time.Time     // Reference time for dates; zero means time.Now
	Output    string        // Output file (.xlsx or .csv)
	VerifyURL string        // Base URL of a running dashboard to check, optional
	Timeout   time.Duration // HTTP request timeout for verification
	Logger    logger.Logger // Progress logger; nil discards output
}

// Row is one generated application.
type Row struct {
	ID          string
	Applied     time.Time
	Company     string
	Title       string
	Interviewed string // "1", "0" or blank
	Offered     string // "1", "0" or blank
}

// Stats holds generation statistics.
type Stats struct {
	Rows        int
	Interviewed int
	Offered     int
	Untitled    int
	Duration    time.Duration
}

// Headers are the column names written to every file.
var Headers = []string{"Application ID", "Date Applied", "Company", "Job Title", "Interviewed", "Offered"}

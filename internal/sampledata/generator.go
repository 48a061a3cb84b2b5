// Package sampledata generates synthetic job application workbooks for demos
// and manual testing of the dashboard.
package sampledata

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Probabilities used when generating rows.
const (
	interviewedShare   = 0.25
	explicitNoShare    = 0.10
	offerShare         = 0.30
	untitledShare      = 0.05
	seniorityShare     = 0.35
	defaultSpanDays    = 365
	hoursPerDay        = 24
	defaultSampleCount = 120
)

var companies = []string{
	"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Stark Industries",
	"Wayne Enterprises", "Wonka", "Cyberdyne", "Soylent", "Vandelay", "Pied Piper",
}

var roleTitles = []string{
	"Data Engineer", "Data Analyst", "Software Engineer", "Backend Engineer",
	"Product Manager", "Marketing Associate", "UX Designer", "Data Scientist",
	"DevOps Engineer", "Business Analyst",
}

var seniority = []string{"Senior", "Junior", "Lead", "Staff"}

// Generate creates cfg.Rows applications. Output depends only on the seed,
// the row count, the span and the reference time.
func Generate(cfg *Config) []Row {
	n := cfg.Rows
	if n <= 0 {
		n = defaultSampleCount
	}
	span := cfg.Span
	if span <= 0 {
		span = defaultSpanDays * hoursPerDay * time.Hour
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(span / (hoursPerDay * time.Hour))
	if days < 1 {
		days = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // reproducible demo data
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = generateRow(rng, today, days)
	}
	return rows
}

func generateRow(rng *rand.Rand, today time.Time, days int) Row {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.New()
	}
	row := Row{
		ID:      id.String(),
		Applied: today.AddDate(0, 0, -rng.Intn(days)),
		Company: companies[rng.Intn(len(companies))],
	}

	if rng.Float64() >= untitledShare {
		title := roleTitles[rng.Intn(len(roleTitles))]
		if rng.Float64() < seniorityShare {
			title = seniority[rng.Intn(len(seniority))] + " " + title
		}
		row.Title = title
	}

	switch p := rng.Float64(); {
	case p < interviewedShare:
		row.Interviewed = "1"
		if rng.Float64() < offerShare {
			row.Offered = "1"
		} else {
			row.Offered = "0"
		}
	case p < interviewedShare+explicitNoShare:
		row.Interviewed = "0"
	}
	return row
}

// Summarize counts generated rows.
func Summarize(rows []Row) Stats {
	s := Stats{Rows: len(rows)}
	for _, r := range rows {
		if r.Interviewed == "1" {
			s.Interviewed++
		}
		if r.Offered == "1" {
			s.Offered++
		}
		if r.Title == "" {
			s.Untitled++
		}
	}
	return s
}

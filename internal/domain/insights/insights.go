// Package insights turns role counts into short human-readable sentences for
// the dashboard summary panel.
package insights

import (
	"fmt"
	"strings"

	"github.com/okian/jobpulse/internal/domain/roles"
)

// Fixed messages.
const (
	NoPatterns   = "No clear role patterns detected in your job applications."
	NotAvailable = "Job title analysis not available - Please ensure your Excel file has a column for job titles."
	Diverse      = "Your job search appears quite diverse across different roles."
	Focused      = "Your job search is very focused on specific role types."
)

// Diversity thresholds on distinct roles per application.
const (
	minJobsForTrend  = 10
	diverseThreshold = 0.5
	focusedThreshold = 0.2
	secondaryRoles   = 2
)

// Generate describes role counts relative to total applications. The top
// role is reported with its share of total, the next two roles follow in one
// sentence, and a diversity remark is added only for 10 or more applications.
func Generate(counts map[string]int, total int) []string {
	if len(counts) == 0 {
		return []string{NoPatterns}
	}

	ranked := roles.Ranked(counts)
	primary := ranked[0]
	out := []string{fmt.Sprintf(
		"Your job search is primarily focused on roles involving %s (%d applications, %s of your search).",
		primary.Label, primary.Count, Percent(primary.Count, total),
	)}

	if len(ranked) > 1 {
		next := ranked[1:min(len(ranked), 1+secondaryRoles)]
		parts := make([]string, len(next))
		for i, r := range next {
			parts[i] = fmt.Sprintf("%s (%d applications)", r.Label, r.Count)
		}
		out = append(out, fmt.Sprintf("You're also exploring roles involving %s.", strings.Join(parts, " and ")))
	}

	if total >= minJobsForTrend {
		ratio := float64(len(counts)) / float64(total)
		switch {
		case ratio > diverseThreshold:
			out = append(out, Diverse)
		case ratio < focusedThreshold:
			out = append(out, Focused)
		}
	}
	return out
}

// Percent formats part/total as a percentage with one decimal, e.g. "80.0%".
// A zero total yields "N/A".
func Percent(part, total int) string {
	if total <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}

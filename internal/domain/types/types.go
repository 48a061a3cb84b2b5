// Package types contains common read shapes served by the dashboard.
package types

import "time"

// StatusCount is one bar of the status chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TimelinePoint is the number of applications sent on one day.
type TimelinePoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// RangePreset is one zoom button of the timeline chart. A zero From means
// the preset spans all data.
type RangePreset struct {
	Label string    `json:"label"`
	From  time.Time `json:"from,omitzero"`
	To    time.Time `json:"to,omitzero"`
}

// DateLayout is the wire format of timeline dates.
const DateLayout = "2006-01-02"

// Timeline is the timeline chart payload.
type Timeline struct {
	Points []TimelinePoint `json:"points"`
	Ranges []RangePreset   `json:"ranges"`
}

// Summary is the summary panel payload. Rates are fractions of Total; the
// text variants are formatted like "12.5%" or "N/A" when Total is zero.
type Summary struct {
	Total             int            `json:"total"`
	Counts            map[string]int `json:"counts"`
	InterviewRate     float64        `json:"interview_rate"`
	InterviewRateText string         `json:"interview_rate_text"`
	OfferRate         float64        `json:"offer_rate"`
	OfferRateText     string         `json:"offer_rate_text"`
	Insights          []string       `json:"insights"`
}

// RoleShare is one role with its share of clustered titles in percent.
type RoleShare struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// RolesReport is the role breakdown payload. Available is false when the
// data has no title column.
type RolesReport struct {
	Available bool        `json:"available"`
	Roles     []RoleShare `json:"roles"`
	Insights  []string    `json:"insights"`
}

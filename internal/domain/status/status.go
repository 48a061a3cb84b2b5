// Package status derives an application status from its offer and interview
// flags and the age of the application.
package status

import (
	"strings"
	"time"

	"github.com/okian/jobpulse/internal/domain/model"
)

// Status is the derived state of one application.
type Status string

// Known statuses in decision priority order.
const (
	Offered     Status = "Offered"
	Interviewed Status = "Interviewed"
	Rejected    Status = "Rejected"
	Pending     Status = "Pending"
)

// DefaultRejectAfter is how long an application may go without an interview
// flag before it is treated as rejected.
const DefaultRejectAfter = 120 * 24 * time.Hour

// All returns every status in decision priority order.
func All() []Status {
	return []Status{Offered, Interviewed, Rejected, Pending}
}

// Parse resolves a status name case-insensitively.
func Parse(s string) (Status, error) {
	for _, st := range All() {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", newUnknownError(s)
}

// String implements fmt.Stringer.
func (s Status) String() string { return string(s) }

// Classify applies the default rejection window. See Classifier.Classify.
func Classify(offered, interviewed *bool, applied, now time.Time) Status {
	return defaultClassifier.Classify(offered, interviewed, applied, now)
}

var defaultClassifier = NewClassifier()

// Classifier assigns exactly one status per application.
type Classifier struct {
	rejectAfter time.Duration
}

// NewClassifier creates a classifier with the default rejection window.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{rejectAfter: DefaultRejectAfter}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RejectAfter returns the configured rejection window.
func (c *Classifier) RejectAfter() time.Duration { return c.rejectAfter }

// Classify returns the status for one application. First match wins:
//  1. offered -> Offered
//  2. interviewed -> Interviewed
//  3. interview flag missing and applied before now-rejectAfter -> Rejected
//  4. otherwise Pending
//
// An explicit interviewed=false never ages into Rejected, and neither does an
// unknown application date.
func (c *Classifier) Classify(offered, interviewed *bool, applied, now time.Time) Status {
	if offered != nil && *offered {
		return Offered
	}
	if interviewed != nil && *interviewed {
		return Interviewed
	}
	if interviewed == nil && !applied.IsZero() && applied.Before(now.Add(-c.rejectAfter)) {
		return Rejected
	}
	return Pending
}

// ClassifyAll classifies every record against the same reference time.
func (c *Classifier) ClassifyAll(records []model.Application, now time.Time) []Status {
	out := make([]Status, len(records))
	for i, r := range records {
		out[i] = c.Classify(r.Offered, r.Interviewed, r.Applied, now)
	}
	return out
}

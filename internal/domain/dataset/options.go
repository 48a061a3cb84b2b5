package dataset

import (
	"time"

	"github.com/okian/jobpulse/internal/domain/status"
)

// Option applies a configuration option to table loading.
type Option func(*loadConfig)

type loadConfig struct {
	dateColumn string
	classifier *status.Classifier
	now        func() time.Time
}

// WithDateColumn sets the header of the required application date column.
func WithDateColumn(name string) Option {
	return func(c *loadConfig) {
		if name != "" {
			c.dateColumn = name
		}
	}
}

// WithClassifier sets the status classifier applied at load time.
func WithClassifier(cl *status.Classifier) Option {
	return func(c *loadConfig) {
		if cl != nil {
			c.classifier = cl
		}
	}
}

// WithClock sets the reference clock used for status classification.
func WithClock(now func() time.Time) Option {
	return func(c *loadConfig) {
		if now != nil {
			c.now = now
		}
	}
}

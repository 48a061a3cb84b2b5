package status

import "time"

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithRejectAfter sets how old an application without an interview flag must
// be before it is classified as rejected. Negative values are ignored.
func WithRejectAfter(d time.Duration) Option {
	return func(c *Classifier) {
		if d >= 0 {
			c.rejectAfter = d
		}
	}
}

package roles

import "github.com/okian/jobpulse/pkg/logger"

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithClusterCount sets the maximum number of role clusters.
func WithClusterCount(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.clusterCount = n
		}
	}
}

// WithSeed sets the k-means seed.
func WithSeed(seed int64) Option {
	return func(e *Extractor) {
		e.seed = seed
	}
}

// WithRestarts sets how many k-means initialisations are tried.
func WithRestarts(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.restarts = n
		}
	}
}

// WithDocFreqBounds sets the vocabulary bounds: terms must appear in at least
// minDocs titles and in at most maxFraction of all titles.
func WithDocFreqBounds(minDocs int, maxFraction float64) Option {
	return func(e *Extractor) {
		if minDocs > 0 {
			e.minDocFreq = minDocs
		}
		if maxFraction > 0 && maxFraction <= 1 {
			e.maxDocFreq = maxFraction
		}
	}
}

// WithPartialTerms replaces the partial role term table. An empty list keeps
// the current table.
func WithPartialTerms(terms []string) Option {
	return func(e *Extractor) {
		if len(terms) > 0 {
			e.partial = normalizeTerms(terms)
		}
	}
}

// WithLogger sets the logger used to report swallowed failures.
func WithLogger(l logger.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

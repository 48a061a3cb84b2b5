// Package roles groups free-text job titles into coarse role categories using
// TF-IDF features and k-means clustering, then picks a short label per group.
package roles

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/okian/jobpulse/pkg/logger"
	"github.com/okian/jobpulse/pkg/metrics"
)

// Extraction defaults.
const (
	DefaultClusterCount = 5
	DefaultSeed         = 42
	DefaultRestarts     = 1
	topTermsPerCluster  = 3
)

// Cluster is one labelled group of titles.
type Cluster struct {
	Label string
	Count int
	Terms []string // top weighted terms, highest first
}

// Extractor turns job titles into role labels with counts.
type Extractor struct {
	clusterCount int
	seed         int64
	restarts     int
	minDocFreq   int
	maxDocFreq   float64
	partial      map[string]struct{}
	logger       logger.Logger
}

// NewExtractor creates an extractor with defaults: 5 clusters, seed 42,
// min_df 2, max_df 0.9, DefaultPartialTerms.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		clusterCount: DefaultClusterCount,
		seed:         DefaultSeed,
		restarts:     DefaultRestarts,
		minDocFreq:   defaultMinDocFreq,
		maxDocFreq:   defaultMaxDocFreq,
		partial:      normalizeTerms(DefaultPartialTerms),
		logger:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsPartial reports whether term is a partial role term on its own.
func (e *Extractor) IsPartial(term string) bool {
	_, ok := e.partial[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Extract returns role label -> number of titles. Missing titles are ignored.
// Failures are logged and yield an empty map; "no insight" is a normal result.
func (e *Extractor) Extract(ctx context.Context, titles []*string) map[string]int {
	start := time.Now()
	clusters, err := e.Analyze(ctx, titles)
	metrics.RecordRoleExtractionDuration(float64(time.Since(start).Microseconds()) / 1000)

	counts := make(map[string]int, len(clusters))
	if err != nil {
		reason := failureReason(err)
		metrics.RecordRoleExtractionFailure(reason)
		e.logger.Warn(ctx, "role extraction failed",
			logger.String("reason", reason),
			logger.Int("titles", len(titles)),
			logger.Error(err),
		)
		return counts
	}
	for _, c := range clusters {
		counts[c.Label] += c.Count
	}
	metrics.UpdateRoleClusters(len(counts))
	return counts
}

// Analyze runs the full pipeline and reports failures instead of hiding
// them. Clusters sharing a label are merged. An input without any usable
// title yields no clusters and no error.
func (e *Extractor) Analyze(ctx context.Context, titles []*string) (clusters []Cluster, err error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	docs := normalizeTitles(titles)
	if len(docs) == 0 {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			clusters, err = nil, fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	matrix, err := NewVectorizer(e.minDocFreq, e.maxDocFreq).FitTransform(docs)
	if err != nil {
		return nil, fmt.Errorf("vectorize titles: %w", err)
	}
	fit, err := NewKMeans(e.clusterCount, e.seed, e.restarts).Fit(matrix.Rows)
	if err != nil {
		return nil, fmt.Errorf("cluster titles: %w", err)
	}

	members := make([][]int, len(fit.Centroids))
	for i, l := range fit.Labels {
		members[l] = append(members[l], i)
	}

	index := make(map[string]int)
	for _, idx := range members {
		if len(idx) == 0 {
			continue
		}
		terms := topTerms(matrix, idx, topTermsPerCluster)
		label, ok := e.label(terms, docs, idx)
		if !ok {
			e.logger.Debug(ctx, "dropping cluster without a complete role label",
				logger.Int("titles", len(idx)),
			)
			continue
		}
		if at, seen := index[label]; seen {
			clusters[at].Count += len(idx)
			continue
		}
		index[label] = len(clusters)
		clusters = append(clusters, Cluster{Label: label, Count: len(idx), Terms: terms})
	}
	return clusters, nil
}

// label picks the cluster name. A partial top term is paired with the
// runner-up term; clusters without weighted terms fall back to their most
// common title. ok is false when only a bare partial term is available.
func (e *Extractor) label(terms []string, docs []string, idx []int) (string, bool) {
	if len(terms) > 0 {
		top := terms[0]
		if !e.IsPartial(top) {
			return top, true
		}
		if len(terms) > 1 {
			next := terms[1]
			if containsWord(next, top) {
				return next, true
			}
			return top + " " + next, true
		}
	}
	fallback := mostCommon(docs, idx)
	if fallback == "" || e.IsPartial(fallback) {
		return "", false
	}
	return fallback, true
}

// topTerms averages the member rows and returns up to n positively weighted
// terms, heaviest first. Ties prefer bigrams, then lexicographic order.
func topTerms(m *Matrix, idx []int, n int) []string {
	mean := make([]float64, len(m.Terms))
	for _, i := range idx {
		floats.Add(mean, m.Rows[i])
	}
	floats.Scale(1/float64(len(idx)), mean)

	candidates := make([]int, 0, len(mean))
	for j, w := range mean {
		if w > 0 {
			candidates = append(candidates, j)
		}
	}
	sort.Slice(candidates, func(a, b int) bool {
		ja, jb := candidates[a], candidates[b]
		if mean[ja] != mean[jb] {
			return mean[ja] > mean[jb]
		}
		wa, wb := strings.Count(m.Terms[ja], " "), strings.Count(m.Terms[jb], " ")
		if wa != wb {
			return wa > wb
		}
		return m.Terms[ja] < m.Terms[jb]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]string, len(candidates))
	for k, j := range candidates {
		out[k] = m.Terms[j]
	}
	return out
}

// mostCommon returns the most frequent title among idx, rebuilt from its
// tokens so the label only carries vocabulary characters. Ties are broken
// lexicographically.
func mostCommon(docs []string, idx []int) string {
	freq := make(map[string]int)
	for _, i := range idx {
		if doc := strings.Join(WordTokenizer{}.Tokenize(docs[i]), " "); doc != "" {
			freq[doc]++
		}
	}
	best, bestN := "", 0
	for doc, n := range freq {
		if n > bestN || (n == bestN && doc < best) {
			best, bestN = doc, n
		}
	}
	return best
}

func containsWord(phrase, word string) bool {
	for _, w := range strings.Fields(phrase) {
		if w == word {
			return true
		}
	}
	return false
}

func normalizeTitles(titles []*string) []string {
	docs := make([]string, 0, len(titles))
	for _, t := range titles {
		if t == nil {
			continue
		}
		s := strings.ToLower(strings.TrimSpace(*t))
		if s == "" {
			continue
		}
		docs = append(docs, s)
	}
	return docs
}

func normalizeTerms(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

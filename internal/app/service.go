// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okian/jobpulse/internal/adapters/source"
	"github.com/okian/jobpulse/internal/domain/dataset"
	"github.com/okian/jobpulse/internal/domain/insights"
	"github.com/okian/jobpulse/internal/domain/roles"
	"github.com/okian/jobpulse/internal/domain/status"
	"github.com/okian/jobpulse/internal/domain/types"
	"github.com/okian/jobpulse/pkg/logger"
	"github.com/okian/jobpulse/pkg/metrics"
)

// timelineRanges are the zoom presets of the timeline chart, counted back
// from the latest application date.
var timelineRanges = []struct {
	label         string
	months, years int
}{
	{label: "1m", months: 1},
	{label: "3m", months: 3},
	{label: "6m", months: 6},
	{label: "1y", years: 1},
	{label: "all"},
}

// Service answers dashboard queries over one loaded dataset.
type Service struct {
	mu sync.RWMutex

	// Core components
	classifier *status.Classifier
	extractor  *roles.Extractor
	ds         *dataset.Dataset

	// Configuration
	dataPath   string
	dateColumn string
	sourceOpts []source.Option
	now        func() time.Time

	// State
	started bool
	roles   map[string]map[string]int // role counts per filter key

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		classifier: status.NewClassifier(),
		extractor:  roles.NewExtractor(),
		dateColumn: dataset.DefaultDateColumn,
		now:        time.Now,
		roles:      make(map[string]map[string]int),
		logger:     nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset if one was not supplied and classifies it.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.ds == nil {
		if s.dataPath == "" {
			return ErrNoDataset
		}
		s.logger.Info(ctx, "loading applications", logger.String("path", s.dataPath))
		table, err := source.Load(ctx, s.dataPath, s.sourceOpts...)
		if err != nil {
			return err
		}
		ds, err := dataset.FromTable(table,
			dataset.WithDateColumn(s.dateColumn),
			dataset.WithClassifier(s.classifier),
			dataset.WithClock(s.now),
		)
		if err != nil {
			return fmt.Errorf("build dataset from %q: %w", s.dataPath, err)
		}
		s.ds = ds
	}

	s.publishMetrics()
	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("records", s.ds.Len()),
		logger.String("titleColumn", s.ds.TitleColumn),
		logger.String("datasetID", s.ds.ID.String()),
	)
	if !s.ds.HasTitles() {
		s.logger.Warn(ctx, "no job title column found; role analysis disabled",
			logger.Any("candidates", dataset.TitleColumns),
		)
	}
	return nil
}

// Stop releases cached results.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.roles = make(map[string]map[string]int)
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Ready reports whether a dataset is loaded.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started && s.ds != nil
}

func (s *Service) publishMetrics() {
	metrics.UpdateDatasetRecords(s.ds.Len())
	all := s.ds.View()
	for _, st := range status.All() {
		metrics.UpdateStatusCount(st.String(), all.Count(st))
	}
}

func (s *Service) current() (*dataset.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.ds, nil
}

// Statuses returns the statuses present in the data, by first appearance.
func (s *Service) Statuses(ctx context.Context) ([]status.Status, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}
	return ds.StatusOptions(), nil
}

// StatusChart returns the count per status of the filtered applications,
// highest first.
func (s *Service) StatusChart(ctx context.Context, filter []status.Status) ([]types.StatusCount, error) {
	ds, err := s.current()
	if err != nil {
		return nil, err
	}
	return ds.View(filter...).StatusCounts(), nil
}

// Timeline returns applications per day with the zoom presets.
func (s *Service) Timeline(ctx context.Context, filter []status.Status) (types.Timeline, error) {
	ds, err := s.current()
	if err != nil {
		return types.Timeline{}, err
	}
	view := ds.View(filter...)
	out := types.Timeline{
		Points: view.Timeline(),
		Ranges: make([]types.RangePreset, 0, len(timelineRanges)),
	}
	first, last, ok := view.DateRange()
	for _, r := range timelineRanges {
		p := types.RangePreset{Label: r.label}
		if ok && (r.months > 0 || r.years > 0) {
			p.From = last.AddDate(-r.years, -r.months, 0)
			p.To = last
		}
		out.Ranges = append(out.Ranges, p)
	}
	if ok {
		all := &out.Ranges[len(out.Ranges)-1]
		all.From, all.To = first, last
	}
	return out, nil
}

// Summary returns the totals, rates and insights of the filtered view.
func (s *Service) Summary(ctx context.Context, filter []status.Status) (types.Summary, error) {
	ds, err := s.current()
	if err != nil {
		return types.Summary{}, err
	}
	view := ds.View(filter...)
	total := view.Len()

	out := types.Summary{
		Total:  total,
		Counts: make(map[string]int, len(status.All())),
	}
	for _, st := range status.All() {
		out.Counts[st.String()] = view.Count(st)
	}
	interviewed, offered := out.Counts[status.Interviewed.String()], out.Counts[status.Offered.String()]
	if total > 0 {
		out.InterviewRate = float64(interviewed) / float64(total)
		out.OfferRate = float64(offered) / float64(total)
	}
	out.InterviewRateText = insights.Percent(interviewed, total)
	out.OfferRateText = insights.Percent(offered, total)

	if !ds.HasTitles() {
		out.Insights = []string{insights.NotAvailable}
		return out, nil
	}
	out.Insights = insights.Generate(s.roleCounts(ctx, ds, filter), total)
	return out, nil
}

// Roles returns the ranked role breakdown of the filtered view.
func (s *Service) Roles(ctx context.Context, filter []status.Status) (types.RolesReport, error) {
	ds, err := s.current()
	if err != nil {
		return types.RolesReport{}, err
	}
	if !ds.HasTitles() {
		return types.RolesReport{
			Roles:    []types.RoleShare{},
			Insights: []string{insights.NotAvailable},
		}, nil
	}

	view := ds.View(filter...)
	counts := s.roleCounts(ctx, ds, filter)
	dist := roles.Distribution(counts)
	ranked := roles.Ranked(counts)
	out := types.RolesReport{
		Available: true,
		Roles:     make([]types.RoleShare, len(ranked)),
		Insights:  insights.Generate(counts, view.Len()),
	}
	for i, r := range ranked {
		out.Roles[i] = types.RoleShare{Label: r.Label, Count: r.Count, Percent: dist[r.Label]}
	}
	return out, nil
}

// roleCounts clusters the titles of a view, memoised per filter. The dataset
// never changes after Start so results stay valid until Stop.
func (s *Service) roleCounts(ctx context.Context, ds *dataset.Dataset, filter []status.Status) map[string]int {
	key := filterKey(filter)

	s.mu.RLock()
	counts, ok := s.roles[key]
	s.mu.RUnlock()
	if ok {
		return counts
	}

	counts = s.extractor.Extract(ctx, ds.View(filter...).Titles())
	s.logger.Debug(ctx, "roles extracted",
		logger.String("filter", key),
		logger.Int("roles", len(counts)),
	)

	s.mu.Lock()
	if s.started {
		s.roles[key] = counts
	}
	s.mu.Unlock()
	return counts
}

func filterKey(filter []status.Status) string {
	names := make([]string, 0, len(filter))
	seen := make(map[status.Status]bool, len(filter))
	for _, st := range filter {
		if !seen[st] {
			seen[st] = true
			names = append(names, st.String())
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":  s.started,
		"dataPath": s.dataPath,
	}

	if s.started {
		stats["records"] = s.ds.Len()
		stats["titleColumn"] = s.ds.TitleColumn
		stats["loadedAt"] = s.ds.LoadedAt.UTC().Format(time.RFC3339)
		stats["datasetID"] = s.ds.ID.String()
		stats["rejectAfterDays"] = int(s.classifier.RejectAfter().Hours() / 24)
		stats["cachedRoleViews"] = len(s.roles)

		metrics.UpdateDatasetRecords(s.ds.Len())
	}

	return stats
}

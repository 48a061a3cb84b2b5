package service

import (
	"time"

	"github.com/okian/jobpulse/internal/adapters/source"
	"github.com/okian/jobpulse/internal/domain/dataset"
	"github.com/okian/jobpulse/internal/domain/roles"
	"github.com/okian/jobpulse/internal/domain/status"
	"github.com/okian/jobpulse/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClassifier sets the status classifier used when loading data.
func WithClassifier(c *status.Classifier) Option {
	return func(s *Service) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithExtractor sets the role extractor.
func WithExtractor(e *roles.Extractor) Option {
	return func(s *Service) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithClock sets the reference clock for status classification.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithDataPath sets the applications file loaded on Start.
func WithDataPath(path string) Option {
	return func(s *Service) {
		s.dataPath = path
	}
}

// WithDateColumn sets the header of the application date column.
func WithDateColumn(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.dateColumn = name
		}
	}
}

// WithSourceOptions sets options passed to the file reader.
func WithSourceOptions(opts ...source.Option) Option {
	return func(s *Service) {
		s.sourceOpts = append(s.sourceOpts, opts...)
	}
}

// WithDataset uses an already built dataset instead of loading a file.
func WithDataset(ds *dataset.Dataset) Option {
	return func(s *Service) {
		s.ds = ds
	}
}

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables over the defaults.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8050".
	Addr string `koanf:"addr"`

	// DataPath is the applications file (.xlsx, .csv or .db).
	DataPath string `koanf:"data_path"`

	// Sheet selects a workbook sheet; empty means the first sheet.
	Sheet string `koanf:"sheet"`

	// SQLiteTable is the table read from sqlite data files.
	SQLiteTable string `koanf:"sqlite_table"`

	// DateColumn is the header of the required application date column.
	DateColumn string `koanf:"date_column"`

	// RejectAfterDays is the silence window after which an application
	// without an interview flag counts as rejected.
	RejectAfterDays int `koanf:"reject_after_days"`

	// ClusterCount caps the number of role clusters.
	ClusterCount int `koanf:"cluster_count"`

	// ClusterSeed seeds k-means initialisation.
	ClusterSeed int64 `koanf:"cluster_seed"`

	// ClusterRestarts is the number of k-means initialisations tried.
	ClusterRestarts int `koanf:"cluster_restarts"`

	// MinDocFreq and MaxDocFreq bound the title vocabulary: a term must occur
	// in at least MinDocFreq titles and in at most MaxDocFreq of all titles.
	MinDocFreq int     `koanf:"min_doc_freq"`
	MaxDocFreq float64 `koanf:"max_doc_freq"`

	// PartialRoleTerms overrides the words that need a second term to form a
	// label. Empty keeps the built-in table.
	PartialRoleTerms []string `koanf:"partial_role_terms"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":8050",
		DataPath:        "applications.xlsx",
		SQLiteTable:     "applications",
		DateColumn:      "Date Applied",
		RejectAfterDays: 120,
		ClusterCount:    5,
		ClusterSeed:     42,
		ClusterRestarts: 1,
		MinDocFreq:      2,
		MaxDocFreq:      0.9,
	}
}

// RejectAfter returns the rejection window as a duration.
func (c *Config) RejectAfter() time.Duration {
	return time.Duration(c.RejectAfterDays) * 24 * time.Hour
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return invalid("addr must not be empty")
	case c.DataPath == "":
		return invalid("data_path must not be empty")
	case c.DateColumn == "":
		return invalid("date_column must not be empty")
	case c.LogFormat != "text" && c.LogFormat != "json":
		return invalid(fmt.Sprintf("log_format must be text or json, got %q", c.LogFormat))
	case c.ClusterCount < 1:
		return invalid("cluster_count must be at least 1")
	case c.ClusterRestarts < 1:
		return invalid("cluster_restarts must be at least 1")
	case c.MinDocFreq < 1:
		return invalid("min_doc_freq must be at least 1")
	case c.MaxDocFreq <= 0 || c.MaxDocFreq > 1:
		return invalid("max_doc_freq must be in (0, 1]")
	case c.RejectAfterDays < 0:
		return invalid("reject_after_days must not be negative")
	}
	return nil
}

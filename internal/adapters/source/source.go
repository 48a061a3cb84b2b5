// Package source reads application tables from spreadsheet, CSV and sqlite
// files.
package source

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/okian/jobpulse/internal/domain/dataset"
	"github.com/okian/jobpulse/pkg/metrics"
)

// Format identifies a supported file type.
type Format string

// Supported formats.
const (
	FormatXLSX   Format = "xlsx"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Load reads the table stored at path. The format is chosen by extension.
func Load(ctx context.Context, path string, opts ...Option) (dataset.Table, error) {
	o := options{table: DefaultTable}
	for _, opt := range opts {
		opt(&o)
	}

	format, err := DetectFormat(path)
	if err != nil {
		metrics.RecordDatasetLoad("unknown", "unsupported")
		return dataset.Table{}, newLoadError(path, err)
	}

	start := time.Now()
	var table dataset.Table
	switch format {
	case FormatXLSX:
		table, err = readXLSX(path, o.sheet)
	case FormatCSV:
		table, err = readCSV(path)
	case FormatSQLite:
		table, err = readSQLite(ctx, path, o.table)
	}
	metrics.RecordDatasetLoadDuration(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		metrics.RecordDatasetLoad(string(format), "error")
		return dataset.Table{}, newLoadError(path, err)
	}
	metrics.RecordDatasetLoad(string(format), "success")
	return table, nil
}

// split turns raw rows into a Table, taking the first row as headers.
func split(rows [][]string) dataset.Table {
	if len(rows) == 0 {
		return dataset.Table{}
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return dataset.Table{Headers: headers, Rows: rows[1:]}
}

package sampledata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// File permission constants.
const (
	directoryPermission = 0750
	sheetName           = "Applications"
	dateLayout          = "2006-01-02"
)

// ErrUnsupportedOutput is returned for output files other than .xlsx or .csv.
var ErrUnsupportedOutput = errors.New("unsupported output format; use .xlsx or .csv")

// Write saves rows to path. The format follows the file extension.
func Write(path string, rows []Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeXLSX(path, rows)
	case ".csv":
		return writeCSV(path, rows)
	default:
		return ErrUnsupportedOutput
	}
}

func writeXLSX(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		return err
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		values := []any{r.ID, r.Applied, r.Company, r.Title, flagValue(r.Interviewed), flagValue(r.Offered)}
		for col, v := range values {
			if v == nil || v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
		dateCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, dateCell, dateCell, dateStyle); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// flagValue writes flags as numbers. Blank flags stay empty cells.
func flagValue(s string) any {
	switch s {
	case "1":
		return 1
	case "0":
		return 0
	default:
		return nil
	}
}

func writeCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(Headers); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{r.ID, r.Applied.Format(dateLayout), r.Company, r.Title, r.Interviewed, r.Offered}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}

package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order after Excel serial numbers.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// Excel serials below this are treated as plain numbers, not dates.
const minExcelSerial = 1

// ParseBool reads a boolean-like cell. Blank cells are missing (nil).
// Numeric cells are true only when equal to 1; unrecognised text is false.
func ParseBool(cell string) *bool {
	s := strings.ToLower(strings.TrimSpace(cell))
	if s == "" {
		return nil
	}
	var v bool
	switch s {
	case "1", "true", "yes", "y", "x":
		v = true
	case "0", "false", "no", "n":
		v = false
	default:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			v = f == 1
		}
	}
	return &v
}

// ParseDate reads a date cell. Spreadsheet serial numbers and the common
// text layouts are accepted; anything else is the zero time.
func ParseDate(cell string) time.Time {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < minExcelSerial {
			return time.Time{}
		}
		t, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Package model contains domain models passed between layers.
package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// applicationNamespace scopes name-based application IDs.
var applicationNamespace = uuid.MustParse("6f1c9a52-3d0e-4b8a-9a57-2a3f0f6b7c11")

// Application represents one job application row loaded from a spreadsheet.
// Optional fields are pointers; nil means the cell was blank.
type Application struct {
	ID          string    // stable id derived from the row content
	Row         int       // 1-based data row in the source sheet
	Applied     time.Time // application date; zero when unknown
	Interviewed *bool     // interviewed flag
	Offered     *bool     // offered flag
	Title       *string   // job title as written in the sheet
}

// HasTitle reports whether the application carries a non-blank title.
func (a Application) HasTitle() bool {
	return a.Title != nil && strings.TrimSpace(*a.Title) != ""
}

// NewID derives a deterministic application id from the row number and the
// raw cells, so reloading the same sheet yields the same ids.
func NewID(row int, cells []string) string {
	name := strconv.Itoa(row) + "\x1f" + strings.Join(cells, "\x1f")
	return uuid.NewSHA1(applicationNamespace, []byte(name)).String()
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s.
func String(s string) *string { return &s }

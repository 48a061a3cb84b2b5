// Package dataset turns a raw spreadsheet table into immutable application
// records with their derived statuses, and answers filtered read queries.
package dataset

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/jobpulse/internal/domain/model"
	"github.com/okian/jobpulse/internal/domain/status"
	"github.com/okian/jobpulse/internal/domain/types"
)

// Column headers.
const (
	DefaultDateColumn = "Date Applied"
	InterviewedColumn = "Interviewed"
	OfferedColumn     = "Offered"
)

// TitleColumns are the candidate title headers, first match wins.
var TitleColumns = []string{"Job Title", "JobTitle", "Position", "Title", "Role", "Job"}

// Table is a header row plus data rows of raw cell text.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Dataset is the loaded, classified set of applications. It is never
// mutated after FromTable returns.
type Dataset struct {
	ID          uuid.UUID
	Records     []model.Application
	Statuses    []status.Status
	TitleColumn string // empty when the table has no title column
	LoadedAt    time.Time
}

// FromTable parses a table into a Dataset. The date column is required; the
// interview, offer and title columns are optional.
func FromTable(t Table, opts ...Option) (*Dataset, error) {
	cfg := loadConfig{
		dateColumn: DefaultDateColumn,
		classifier: status.NewClassifier(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(t.Headers) == 0 {
		return nil, ErrEmptyTable
	}

	cols := indexHeaders(t.Headers)
	dateIdx, ok := cols[cfg.dateColumn]
	if !ok {
		return nil, newMissingColumnError(cfg.dateColumn)
	}
	interviewedIdx, hasInterviewed := cols[InterviewedColumn]
	offeredIdx, hasOffered := cols[OfferedColumn]

	ds := &Dataset{
		ID:       uuid.New(),
		LoadedAt: cfg.now(),
	}
	titleIdx := -1
	for _, name := range TitleColumns {
		if i, ok := cols[name]; ok {
			titleIdx, ds.TitleColumn = i, name
			break
		}
	}

	ds.Records = make([]model.Application, 0, len(t.Rows))
	for i, row := range t.Rows {
		if blankRow(row) {
			continue
		}
		rec := model.Application{
			ID:      model.NewID(i+1, row),
			Row:     i + 1,
			Applied: ParseDate(cell(row, dateIdx)),
		}
		if hasInterviewed {
			rec.Interviewed = ParseBool(cell(row, interviewedIdx))
		}
		if hasOffered {
			rec.Offered = ParseBool(cell(row, offeredIdx))
		}
		if titleIdx >= 0 {
			if v := cell(row, titleIdx); strings.TrimSpace(v) != "" {
				rec.Title = model.String(v)
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	ds.Statuses = cfg.classifier.ClassifyAll(ds.Records, ds.LoadedAt)
	return ds, nil
}

// HasTitles reports whether role analysis is possible.
func (d *Dataset) HasTitles() bool { return d.TitleColumn != "" }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }

// View selects the records whose status is in filter. An empty filter
// selects everything.
func (d *Dataset) View(filter ...status.Status) View {
	v := View{ds: d}
	if len(filter) == 0 {
		v.idx = make([]int, len(d.Records))
		for i := range d.Records {
			v.idx[i] = i
		}
		return v
	}
	want := make(map[status.Status]struct{}, len(filter))
	for _, s := range filter {
		want[s] = struct{}{}
	}
	for i, s := range d.Statuses {
		if _, ok := want[s]; ok {
			v.idx = append(v.idx, i)
		}
	}
	return v
}

// StatusOptions returns the distinct statuses present, by first appearance.
func (d *Dataset) StatusOptions() []status.Status {
	seen := make(map[status.Status]struct{}, len(status.All()))
	var out []status.Status
	for _, s := range d.Statuses {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// View is a filtered selection of a Dataset.
type View struct {
	ds  *Dataset
	idx []int
}

// Len returns the number of selected records.
func (v View) Len() int { return len(v.idx) }

// Records returns the selected records.
func (v View) Records() []model.Application {
	out := make([]model.Application, len(v.idx))
	for i, j := range v.idx {
		out[i] = v.ds.Records[j]
	}
	return out
}

// Count returns how many selected records have status s.
func (v View) Count(s status.Status) int {
	n := 0
	for _, j := range v.idx {
		if v.ds.Statuses[j] == s {
			n++
		}
	}
	return n
}

// StatusCounts returns count per status, highest count first. Ties keep
// status priority order. Statuses with no records are omitted.
func (v View) StatusCounts() []types.StatusCount {
	counts := make(map[status.Status]int, len(status.All()))
	for _, j := range v.idx {
		counts[v.ds.Statuses[j]]++
	}
	out := make([]types.StatusCount, 0, len(counts))
	for _, s := range status.All() {
		if n := counts[s]; n > 0 {
			out = append(out, types.StatusCount{Status: s.String(), Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Timeline returns the number of applications per applied day, ascending.
// Records with an unknown date are skipped.
func (v View) Timeline() []types.TimelinePoint {
	counts := make(map[string]int)
	for _, j := range v.idx {
		t := v.ds.Records[j].Applied
		if t.IsZero() {
			continue
		}
		counts[t.Format(types.DateLayout)]++
	}
	out := make([]types.TimelinePoint, 0, len(counts))
	for day, n := range counts {
		out = append(out, types.TimelinePoint{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// DateRange returns the earliest and latest known applied dates. ok is false
// when no selected record has a date.
func (v View) DateRange() (first, last time.Time, ok bool) {
	for _, j := range v.idx {
		t := v.ds.Records[j].Applied
		if t.IsZero() {
			continue
		}
		if !ok || t.Before(first) {
			first = t
		}
		if !ok || t.After(last) {
			last = t
		}
		ok = true
	}
	return first, last, ok
}

// Titles returns the title of every selected record, nil where missing.
func (v View) Titles() []*string {
	out := make([]*string, len(v.idx))
	for i, j := range v.idx {
		out[i] = v.ds.Records[j].Title
	}
	return out
}

func indexHeaders(headers []string) map[string]int {
	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, dup := cols[h]; !dup && h != "" {
			cols[h] = i
		}
	}
	return cols
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

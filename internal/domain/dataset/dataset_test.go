package dataset_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/jobpulse/internal/domain/dataset"
	"github.com/okian/jobpulse/internal/domain/status"
	. "github.com/smartystreets/goconvey/convey"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func sampleTable() dataset.Table {
	return dataset.Table{
		Headers: []string{"Company", "Date Applied", "Position", "Interviewed", "Offered"},
		Rows: [][]string{
			{"Acme", "2024-05-20", "Data Engineer", "", ""},           // Pending
			{"Globex", "2023-12-01", "Senior Data Engineer", "", ""},  // Rejected
			{"Initech", "2024-05-01", "Marketing Associate", "1", ""}, // Interviewed
			{"Umbrella", "2024-04-15", "", "1", "1"},                  // Offered
			{"Hooli", "2023-11-01", "Analyst", "0", "0"},              // Pending
			{"", "", "", "", ""},                                      // blank
			{"Stark", "not a date", "Data Engineer", "", ""},          // Pending
			{"Wayne", "2024-05-20", "Product Manager", "", ""},        // Pending
		},
	}
}

func TestFromTable(t *testing.T) {
	Convey("Given a table with all columns", t, func() {
		ds, err := dataset.FromTable(sampleTable(), dataset.WithClock(clock))

		Convey("Then it loads without error", func() {
			So(err, ShouldBeNil)
			So(ds.LoadedAt, ShouldEqual, now)
			So(ds.TitleColumn, ShouldEqual, "Position")
			So(ds.HasTitles(), ShouldBeTrue)
		})

		Convey("Then blank rows are skipped", func() {
			So(ds.Len(), ShouldEqual, 7)
			So(ds.Records[5].Row, ShouldEqual, 7)
		})

		Convey("Then statuses are classified at load time", func() {
			So(ds.Statuses, ShouldResemble, []status.Status{
				status.Pending, status.Rejected, status.Interviewed, status.Offered,
				status.Pending, status.Pending, status.Pending,
			})
		})

		Convey("Then missing titles are nil", func() {
			So(ds.Records[3].Title, ShouldBeNil)
			So(*ds.Records[0].Title, ShouldEqual, "Data Engineer")
		})

		Convey("Then an unparseable date is unknown", func() {
			So(ds.Records[5].Applied.IsZero(), ShouldBeTrue)
		})

		Convey("Then ids are stable across loads", func() {
			again, _ := dataset.FromTable(sampleTable(), dataset.WithClock(clock))
			So(again.Records[0].ID, ShouldEqual, ds.Records[0].ID)
			So(again.ID, ShouldNotEqual, ds.ID)
		})
	})

	Convey("Given a table without the date column", t, func() {
		_, err := dataset.FromTable(dataset.Table{Headers: []string{"Position"}})

		Convey("Then the load fails with ErrMissingColumn", func() {
			So(errors.Is(err, dataset.ErrMissingColumn), ShouldBeTrue)
		})
	})

	Convey("Given a custom date column", t, func() {
		table := dataset.Table{
			Headers: []string{"Applied On", "Role"},
			Rows:    [][]string{{"2024-05-30", "Designer"}},
		}
		ds, err := dataset.FromTable(table, dataset.WithDateColumn("Applied On"), dataset.WithClock(clock))

		Convey("Then it is used as the date column", func() {
			So(err, ShouldBeNil)
			So(ds.Records[0].Applied, ShouldEqual, time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC))
			So(ds.TitleColumn, ShouldEqual, "Role")
		})
	})

	Convey("Given a table without flag or title columns", t, func() {
		table := dataset.Table{
			Headers: []string{"Date Applied"},
			Rows:    [][]string{{"2023-01-01"}, {"2024-05-30"}},
		}
		ds, err := dataset.FromTable(table, dataset.WithClock(clock))

		Convey("Then flags are unknown and old rows age into Rejected", func() {
			So(err, ShouldBeNil)
			So(ds.Records[0].Interviewed, ShouldBeNil)
			So(ds.Statuses, ShouldResemble, []status.Status{status.Rejected, status.Pending})
		})

		Convey("Then role analysis is unavailable", func() {
			So(ds.TitleColumn, ShouldEqual, "")
			So(ds.HasTitles(), ShouldBeFalse)
		})
	})

	Convey("Given several title candidates", t, func() {
		table := dataset.Table{Headers: []string{"Date Applied", "Role", "Job Title"}}
		ds, err := dataset.FromTable(table)

		Convey("Then the first candidate in priority order wins", func() {
			So(err, ShouldBeNil)
			So(ds.TitleColumn, ShouldEqual, "Job Title")
		})
	})

	Convey("Given an empty table", t, func() {
		_, err := dataset.FromTable(dataset.Table{})

		Convey("Then it is rejected", func() {
			So(err, ShouldEqual, dataset.ErrEmptyTable)
		})
	})
}

func TestView(t *testing.T) {
	Convey("Given a loaded dataset", t, func() {
		ds, err := dataset.FromTable(sampleTable(), dataset.WithClock(clock))
		So(err, ShouldBeNil)

		Convey("When no filter is applied", func() {
			v := ds.View()

			Convey("Then every record is selected", func() {
				So(v.Len(), ShouldEqual, 7)
				So(v.Count(status.Pending), ShouldEqual, 4)
			})

			Convey("Then status counts are ordered by count", func() {
				counts := v.StatusCounts()
				So(counts[0].Status, ShouldEqual, "Pending")
				So(counts[0].Count, ShouldEqual, 4)
				So(counts[1].Status, ShouldEqual, "Offered")
				So(counts, ShouldHaveLength, 4)
			})

			Convey("Then the timeline is ascending and skips unknown dates", func() {
				tl := v.Timeline()
				So(tl, ShouldHaveLength, 5)
				So(tl[0].Date, ShouldEqual, "2023-11-01")
				So(tl[len(tl)-1].Date, ShouldEqual, "2024-05-20")
				So(tl[len(tl)-1].Count, ShouldEqual, 2)
			})

			Convey("Then titles keep missing entries as nil", func() {
				titles := v.Titles()
				So(titles, ShouldHaveLength, 7)
				So(titles[3], ShouldBeNil)
			})

			Convey("Then the date range spans known dates", func() {
				first, last, ok := v.DateRange()
				So(ok, ShouldBeTrue)
				So(first, ShouldEqual, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC))
				So(last, ShouldEqual, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("When filtering by status", func() {
			v := ds.View(status.Offered, status.Interviewed)

			Convey("Then only matching records are selected", func() {
				So(v.Len(), ShouldEqual, 2)
				So(v.Records()[0].Row, ShouldEqual, 3)
				So(v.Count(status.Pending), ShouldEqual, 0)
			})
		})

		Convey("When the filter matches nothing", func() {
			v := ds.View(status.Status("Nope"))

			Convey("Then the view is empty", func() {
				So(v.Len(), ShouldEqual, 0)
				So(v.StatusCounts(), ShouldBeEmpty)
				So(v.Timeline(), ShouldBeEmpty)
				_, _, ok := v.DateRange()
				So(ok, ShouldBeFalse)
			})
		})

		Convey("Then status options follow first appearance", func() {
			So(ds.StatusOptions(), ShouldResemble, []status.Status{
				status.Pending, status.Rejected, status.Interviewed, status.Offered,
			})
		})
	})
}

func TestParseBool(t *testing.T) {
	Convey("Given boolean-like cells", t, func() {
		for _, s := range []string{"1", "TRUE", "yes", "Y", "x", "1.0"} {
			b := dataset.ParseBool(s)
			So(b, ShouldNotBeNil)
			So(*b, ShouldBeTrue)
		}
		for _, s := range []string{"0", "false", "No", "n", "2", "maybe"} {
			b := dataset.ParseBool(s)
			So(b, ShouldNotBeNil)
			So(*b, ShouldBeFalse)
		}
		So(dataset.ParseBool("   "), ShouldBeNil)
	})
}

func TestParseDate(t *testing.T) {
	Convey("Given date cells", t, func() {
		want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		So(dataset.ParseDate("45306"), ShouldEqual, want)
		So(dataset.ParseDate("2024-01-15"), ShouldEqual, want)
		So(dataset.ParseDate("01/15/2024"), ShouldEqual, want)
		So(dataset.ParseDate("1/15/2024"), ShouldEqual, want)
		So(dataset.ParseDate("2024/01/15"), ShouldEqual, want)
		So(dataset.ParseDate("15-Jan-2024"), ShouldEqual, want)
		So(dataset.ParseDate("Jan 15, 2024"), ShouldEqual, want)
		So(dataset.ParseDate("2024-01-15T00:00:00Z"), ShouldEqual, want)
		So(dataset.ParseDate("").IsZero(), ShouldBeTrue)
		So(dataset.ParseDate("0").IsZero(), ShouldBeTrue)
		So(dataset.ParseDate("soon").IsZero(), ShouldBeTrue)
	})
}

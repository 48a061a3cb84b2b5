package source_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"github.com/okian/jobpulse/internal/adapters/source"
	. "github.com/smartystreets/goconvey/convey"
)

func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Applications"); err != nil {
		t.Fatal(err)
	}
	rows := [][]any{
		{"Date Applied", "Job Title", "Interviewed", "Offered"},
		{45306, "Data Engineer", 1, nil},
		{45307, "Analyst", nil, nil},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Applications", cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.NewSheet("Archive"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow("Archive", "A1", &[]any{"Date Applied"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func writeSQLite(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	stmts := []string{
		`CREATE TABLE applications ("Date Applied" TEXT, "Position" TEXT, "Interviewed" INTEGER, "Offered" INTEGER)`,
		`INSERT INTO applications VALUES ('2024-01-15', 'Data Engineer', 1, NULL)`,
		`INSERT INTO applications VALUES ('2024-01-16', NULL, NULL, 0)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	Convey("Given file names", t, func() {
		for path, want := range map[string]source.Format{
			"a.xlsx":    source.FormatXLSX,
			"a.XLSM":    source.FormatXLSX,
			"dir/a.csv": source.FormatCSV,
			"a.db":      source.FormatSQLite,
			"a.sqlite3": source.FormatSQLite,
		} {
			got, err := source.DetectFormat(path)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}

		_, err := source.DetectFormat("a.json")
		So(err, ShouldEqual, source.ErrUnsupportedFormat)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given a workbook", t, func() {
		path := filepath.Join(t.TempDir(), "apps.xlsx")
		writeWorkbook(t, path)

		Convey("When loading the first sheet", func() {
			table, err := source.Load(ctx, path)

			Convey("Then headers and raw values are returned", func() {
				So(err, ShouldBeNil)
				So(table.Headers, ShouldResemble, []string{"Date Applied", "Job Title", "Interviewed", "Offered"})
				So(table.Rows, ShouldHaveLength, 2)
				So(table.Rows[0][0], ShouldEqual, "45306")
				So(table.Rows[0][1], ShouldEqual, "Data Engineer")
				So(table.Rows[0][2], ShouldEqual, "1")
			})
		})

		Convey("When loading a named sheet", func() {
			table, err := source.Load(ctx, path, source.WithSheet("Archive"))

			Convey("Then that sheet is read", func() {
				So(err, ShouldBeNil)
				So(table.Headers, ShouldResemble, []string{"Date Applied"})
				So(table.Rows, ShouldBeEmpty)
			})
		})

		Convey("When the sheet does not exist", func() {
			_, err := source.Load(ctx, path, source.WithSheet("Missing"))

			Convey("Then a load error is returned", func() {
				So(errors.Is(err, source.ErrLoad), ShouldBeTrue)
			})
		})
	})

	Convey("Given a CSV file", t, func() {
		path := filepath.Join(t.TempDir(), "apps.csv")
		content := "Date Applied, Position,Interviewed\n2024-01-15,Data Engineer,yes\n2024-01-16,Analyst\n"
		So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)

		table, err := source.Load(ctx, path)

		Convey("Then ragged rows are accepted and headers trimmed", func() {
			So(err, ShouldBeNil)
			So(table.Headers, ShouldResemble, []string{"Date Applied", "Position", "Interviewed"})
			So(table.Rows, ShouldHaveLength, 2)
			So(table.Rows[1], ShouldResemble, []string{"2024-01-16", "Analyst"})
		})
	})

	Convey("Given a sqlite database", t, func() {
		path := filepath.Join(t.TempDir(), "apps.db")
		writeSQLite(t, path)

		Convey("When reading the default table", func() {
			table, err := source.Load(ctx, path)

			Convey("Then NULLs become blank cells", func() {
				So(err, ShouldBeNil)
				So(table.Headers, ShouldResemble, []string{"Date Applied", "Position", "Interviewed", "Offered"})
				So(table.Rows, ShouldResemble, [][]string{
					{"2024-01-15", "Data Engineer", "1", ""},
					{"2024-01-16", "", "", "0"},
				})
			})
		})

		Convey("When the table does not exist", func() {
			_, err := source.Load(ctx, path, source.WithTable("jobs"))

			Convey("Then a load error is returned", func() {
				So(errors.Is(err, source.ErrLoad), ShouldBeTrue)
			})
		})
	})

	Convey("Given files that cannot be read", t, func() {
		dir := t.TempDir()

		Convey("When the extension is unknown", func() {
			_, err := source.Load(ctx, filepath.Join(dir, "apps.json"))

			Convey("Then the format is rejected", func() {
				So(errors.Is(err, source.ErrUnsupportedFormat), ShouldBeTrue)
				So(errors.Is(err, source.ErrLoad), ShouldBeTrue)
			})
		})

		Convey("When the file is missing", func() {
			_, err := source.Load(ctx, filepath.Join(dir, "missing.db"))

			Convey("Then no database is created", func() {
				So(errors.Is(err, source.ErrLoad), ShouldBeTrue)
				_, statErr := os.Stat(filepath.Join(dir, "missing.db"))
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})
	})
}

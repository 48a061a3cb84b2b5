package source

import (
	"github.com/xuri/excelize/v2"

	"github.com/okian/jobpulse/internal/domain/dataset"
)

func readXLSX(path, sheet string) (dataset.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataset.Table{}, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return dataset.Table{}, ErrNoSheet
		}
		sheet = sheets[0]
	}
	// Raw values keep date cells as serial numbers regardless of display format.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return dataset.Table{}, err
	}
	return split(rows), nil
}

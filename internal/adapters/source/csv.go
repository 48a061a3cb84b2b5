package source

import (
	"encoding/csv"
	"os"

	"github.com/okian/jobpulse/internal/domain/dataset"
)

func readCSV(path string) (dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataset.Table{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return dataset.Table{}, err
	}
	return split(rows), nil
}

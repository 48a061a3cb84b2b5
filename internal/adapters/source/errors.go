package source

import (
	"errors"
	"fmt"
)

// Source errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported data file format")
	ErrLoad              = errors.New("load data file")
	ErrNoSheet           = errors.New("workbook has no sheets")
)

func newLoadError(path string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrLoad, path, err)
}

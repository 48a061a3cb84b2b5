package dataset

import (
	"errors"
	"fmt"
)

// Dataset construction errors.
var (
	ErrMissingColumn = errors.New("required column missing")
	ErrEmptyTable    = errors.New("table has no header row")
)

func newMissingColumnError(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

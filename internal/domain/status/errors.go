package status

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus is returned by Parse for names outside the known set.
var ErrUnknownStatus = errors.New("unknown status")

func newUnknownError(s string) error {
	return fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

package inventory

import (
	"errors"
	"fmt"
)

// Sentinel errors for the repository contract. Callers classify with
// errors.Is; anything else is a storage failure already rolled back.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrProbe      = errors.New("probe mechanism failed")
)

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func conflictErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func probeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrProbe, fmt.Sprintf(format, args...))
}

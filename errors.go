package photoedit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the photoedit package.
var (
	// ErrInvalidScale is returned when a non-positive scale factor is set.
	ErrInvalidScale = errors.New("photoedit: scale must be positive")

	// ErrNilBitmap is returned when an operation needs a source bitmap
	// that has not been rendered yet.
	ErrNilBitmap = errors.New("photoedit: nil bitmap")
)

// TypefaceError is returned when a typeface cannot be loaded or parsed.
type TypefaceError struct {
	Name string
	Err  error
}

func (e *TypefaceError) Error() string {
	return fmt.Sprintf("photoedit: typeface %q: %v", e.Name, e.Err)
}

func (e *TypefaceError) Unwrap() error {
	return e.Err
}

package meter

import (
	"errors"
	"strconv"
)

// Sentinel errors for the meter package.
var (
	// ErrNilCanvas is returned by New when no canvas is given.
	ErrNilCanvas = errors.New("meter: nil canvas")

	// ErrInvalidMaxValue is returned by New when the scale ceiling is not a
	// positive finite number.
	ErrInvalidMaxValue = errors.New("meter: max value must be positive and finite")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("meter: invalid color")

	// ErrInvalidFont is returned when a font descriptor cannot be parsed.
	ErrInvalidFont = errors.New("meter: invalid font")
)

// ColorError reports a color string that could not be parsed.
// It unwraps to ErrInvalidColor.
type ColorError struct {
	Input string
}

func (e *ColorError) Error() string {
	return "meter: invalid color " + strconv.Quote(e.Input)
}

// Unwrap returns ErrInvalidColor.
func (e *ColorError) Unwrap() error {
	return ErrInvalidColor
}

package tempseries

import "errors"

var (
	// ErrInvalidInput is returned when a series is constructed from a nil slice.
	ErrInvalidInput = errors.New("temperature series cannot be nil")

	// ErrOutOfRange is returned when a reading is below AbsoluteZeroCelsius.
	ErrOutOfRange = errors.New("temperature cannot be below -273°C")

	// ErrEmptySeries is returned by statistics that need at least one reading.
	ErrEmptySeries = errors.New("temperature series is empty")
)

// Package tempseries provides an in-memory analysis type for a series of
// temperature readings in degrees Celsius.
//
// An Analysis owns a growable sequence of readings. Every reading is checked
// against the absolute-zero floor (-273 °C) before it is stored, and a batch
// containing a single invalid reading is rejected as a whole.
//
// # Creating an Analysis
//
//	a := tempseries.New()                       // empty
//	a, err := tempseries.NewFromTemps(readings) // validated copy
//
// NewFromTemps returns ErrInvalidInput for a nil slice and ErrOutOfRange
// when any reading is below the floor.
//
// # Appending and Resetting
//
//	size, err := a.AddTemps(21.5, 22.0, 19.8)
//	a.Reset()
//
// # Statistics
//
// Aggregate queries return ErrEmptySeries when the series has no readings:
//
//	avg, err := a.Average()
//	dev, err := a.Deviation() // population standard deviation
//	lo, err := a.Min()
//	hi, err := a.Max()
//	z, err := a.ClosestToZero()
//	v, err := a.ClosestToValue(20)
//
// Filters and sorting never fail; on an empty series they return an empty slice:
//
//	cold := a.LessThan(0)
//	hot := a.GreaterThan(30)
//	mild := a.InRange(15, 25) // both bounds excluded
//	ordered := a.Sorted()
//
// # Summary
//
//	s, err := a.SummaryStatistics()
//	fmt.Println(s)
//	// TempSummaryStatistics { avgTemp=1.00, devTemp=3.74, minTemp=-5.00, maxTemp=5.00 }
//
// An Analysis is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call sequence themselves.
package tempseries

package tempseries

import (
	"fmt"
	"math"
	"sort"
)

// AbsoluteZeroCelsius is the lowest accepted reading.
const AbsoluteZeroCelsius = -273.0

// Analysis holds a series of temperature readings and answers statistics
// queries over them.
type Analysis struct {
	// len(temps) is the logical size, cap(temps) the backing capacity.
	temps []float64
}

// New creates an empty series.
func New() *Analysis {
	return &Analysis{temps: []float64{}}
}

// NewFromTemps creates a series holding a copy of temps.
// Nothing is stored unless every reading is valid.
func NewFromTemps(temps []float64) (*Analysis, error) {
	if temps == nil {
		return nil, ErrInvalidInput
	}
	if err := validate(temps); err != nil {
		return nil, err
	}

	stored := make([]float64, len(temps))
	copy(stored, temps)
	return &Analysis{temps: stored}, nil
}

// validate checks every reading before any of them is stored.
// NaN fails the comparison and is rejected with the rest.
func validate(temps []float64) error {
	for i, t := range temps {
		if !(t >= AbsoluteZeroCelsius) {
			return fmt.Errorf("%w: got %v at index %d", ErrOutOfRange, t, i)
		}
	}
	return nil
}

// Len returns the number of readings.
func (a *Analysis) Len() int {
	return len(a.temps)
}

// Cap returns the current backing capacity.
func (a *Analysis) Cap() int {
	return cap(a.temps)
}

// Temps returns a copy of the readings in insertion order.
func (a *Analysis) Temps() []float64 {
	out := make([]float64, len(a.temps))
	copy(out, a.temps)
	return out
}

// AddTemps appends readings in order and returns the new size.
// If any reading is below AbsoluteZeroCelsius the series is left unchanged.
func (a *Analysis) AddTemps(temps ...float64) (int, error) {
	if err := validate(temps); err != nil {
		return len(a.temps), err
	}
	a.grow(len(temps))
	a.temps = append(a.temps, temps...)
	return len(a.temps), nil
}

// grow doubles the capacity until n more readings fit.
func (a *Analysis) grow(n int) {
	need := len(a.temps) + n
	if need <= cap(a.temps) {
		return
	}

	newCap := cap(a.temps)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < need {
		newCap *= 2
	}

	grown := make([]float64, len(a.temps), newCap)
	copy(grown, a.temps)
	a.temps = grown
}

// Reset discards all readings. The backing capacity is kept.
func (a *Analysis) Reset() {
	a.temps = a.temps[:0]
}

// Average returns the arithmetic mean.
func (a *Analysis) Average() (float64, error) {
	if len(a.temps) == 0 {
		return 0, ErrEmptySeries
	}
	sum := 0.0
	for _, t := range a.temps {
		sum += t
	}
	return sum / float64(len(a.temps)), nil
}

// Deviation returns the population standard deviation.
func (a *Analysis) Deviation() (float64, error) {
	mean, err := a.Average()
	if err != nil {
		return 0, err
	}
	sumSq := 0.0
	for _, t := range a.temps {
		diff := t - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(a.temps))), nil
}

// Min returns the smallest reading.
func (a *Analysis) Min() (float64, error) {
	if len(a.temps) == 0 {
		return 0, ErrEmptySeries
	}
	min := a.temps[0]
	for _, t := range a.temps[1:] {
		if t < min {
			min = t
		}
	}
	return min, nil
}

// Max returns the largest reading.
func (a *Analysis) Max() (float64, error) {
	if len(a.temps) == 0 {
		return 0, ErrEmptySeries
	}
	max := a.temps[0]
	for _, t := range a.temps[1:] {
		if t > max {
			max = t
		}
	}
	return max, nil
}

// ClosestToZero returns the reading with the smallest absolute value.
// On ties the earliest reading wins.
func (a *Analysis) ClosestToZero() (float64, error) {
	return a.ClosestToValue(0)
}

// ClosestToValue returns the reading nearest to target.
// On ties the earliest reading wins.
func (a *Analysis) ClosestToValue(target float64) (float64, error) {
	if len(a.temps) == 0 {
		return 0, ErrEmptySeries
	}
	closest := a.temps[0]
	for _, t := range a.temps[1:] {
		if math.Abs(t-target) < math.Abs(closest-target) {
			closest = t
		}
	}
	return closest, nil
}

// LessThan returns the readings strictly below threshold, in insertion order.
func (a *Analysis) LessThan(threshold float64) []float64 {
	return a.filter(func(t float64) bool { return t < threshold })
}

// GreaterThan returns the readings strictly above threshold, in insertion order.
func (a *Analysis) GreaterThan(threshold float64) []float64 {
	return a.filter(func(t float64) bool { return t > threshold })
}

// InRange returns the readings strictly between lower and upper, in
// insertion order. The result is empty when lower >= upper.
func (a *Analysis) InRange(lower, upper float64) []float64 {
	return a.filter(func(t float64) bool { return t > lower && t < upper })
}

func (a *Analysis) filter(keep func(float64) bool) []float64 {
	out := make([]float64, 0, len(a.temps))
	for _, t := range a.temps {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Sorted returns an ascending copy of the readings.
func (a *Analysis) Sorted() []float64 {
	sorted := a.Temps()
	sort.Float64s(sorted)
	return sorted
}

// SummaryStatistics computes average, deviation, min and max in one snapshot.
func (a *Analysis) SummaryStatistics() (TempSummaryStatistics, error) {
	avg, err := a.Average()
	if err != nil {
		return TempSummaryStatistics{}, err
	}
	dev, err := a.Deviation()
	if err != nil {
		return TempSummaryStatistics{}, err
	}
	min, err := a.Min()
	if err != nil {
		return TempSummaryStatistics{}, err
	}
	max, err := a.Max()
	if err != nil {
		return TempSummaryStatistics{}, err
	}

	return TempSummaryStatistics{
		AvgTemp: avg,
		DevTemp: dev,
		MinTemp: min,
		MaxTemp: max,
	}, nil
}

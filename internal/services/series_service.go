package services

import (
	"fmt"
	"sync"

	"github.com/sartorproj/tempstats/internal/logging"
	"github.com/sartorproj/tempstats/tempseries"
)

// Statistic names accepted by SeriesService.Statistic.
const (
	StatAverage   = "average"
	StatDeviation = "deviation"
	StatMin       = "min"
	StatMax       = "max"
)

// SeriesService shares one temperature series between concurrent requests.
// Every method holds the lock for its whole sequence of series calls.
type SeriesService struct {
	logger *logging.Logger

	mu     sync.Mutex
	series *tempseries.Analysis
}

// NewSeriesService creates a service seeded with initial readings.
// A nil slice starts an empty series.
func NewSeriesService(logger *logging.Logger, initial []float64) (*SeriesService, error) {
	series := tempseries.New()
	if initial != nil {
		var err error
		series, err = tempseries.NewFromTemps(initial)
		if err != nil {
			return nil, wrapSeriesError(err)
		}
	}

	logger.Debug("Series service created", "size", series.Len())
	return &SeriesService{
		logger: logger,
		series: series,
	}, nil
}

// Snapshot returns the readings, size and capacity.
func (s *SeriesService) Snapshot() (temps []float64, capacity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series.Temps(), s.series.Cap()
}

// Add appends readings and returns the new size.
func (s *SeriesService) Add(temps []float64) (int, error) {
	if temps == nil {
		return 0, NewServiceError(CodeInvalidInput, "temps field is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	size, err := s.series.AddTemps(temps...)
	if err != nil {
		s.logger.Warn("Rejected readings", "count", len(temps), "error", err)
		return size, wrapSeriesError(err)
	}
	s.logger.Debug("Readings added", "count", len(temps), "size", size, "capacity", s.series.Cap())
	return size, nil
}

// Reset discards every reading.
func (s *SeriesService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := s.series.Len()
	s.series.Reset()
	s.logger.Info("Series reset", "dropped", dropped)
}

// Sorted returns the readings in ascending order.
func (s *SeriesService) Sorted() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series.Sorted()
}

// LessThan returns readings strictly below threshold.
func (s *SeriesService) LessThan(threshold float64) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series.LessThan(threshold)
}

// GreaterThan returns readings strictly above threshold.
func (s *SeriesService) GreaterThan(threshold float64) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series.GreaterThan(threshold)
}

// InRange returns readings strictly between lower and upper.
func (s *SeriesService) InRange(lower, upper float64) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series.InRange(lower, upper)
}

// Closest returns the reading nearest to target, or nearest to zero when
// target is nil.
func (s *SeriesService) Closest(target *float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		v   float64
		err error
	)
	if target == nil {
		v, err = s.series.ClosestToZero()
	} else {
		v, err = s.series.ClosestToValue(*target)
	}
	return v, wrapSeriesError(err)
}

// Summary returns the summary statistics snapshot.
func (s *SeriesService) Summary() (tempseries.TempSummaryStatistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.series.SummaryStatistics()
	return summary, wrapSeriesError(err)
}

// Statistic returns one named statistic.
func (s *SeriesService) Statistic(name string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stat func() (float64, error)
	switch name {
	case StatAverage:
		stat = s.series.Average
	case StatDeviation:
		stat = s.series.Deviation
	case StatMin:
		stat = s.series.Min
	case StatMax:
		stat = s.series.Max
	default:
		return 0, NewServiceError(CodeUnknownStat, fmt.Sprintf("unknown statistic %q", name))
	}

	v, err := stat()
	return v, wrapSeriesError(err)
}

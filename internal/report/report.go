// Package report assembles every statistic of a series into one value and
// renders it as a table or JSON.
package report

import (
	"errors"

	"github.com/sartorproj/tempstats/tempseries"
)

// Query selects the optional lookups included in a report.
// Nil fields are left out.
type Query struct {
	Target      *float64
	LessThan    *float64
	GreaterThan *float64
	Range       *Bounds
}

// Bounds is an exclusive lower/upper pair.
type Bounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Filter is the result of a threshold or range lookup.
type Filter struct {
	Threshold *float64  `json:"threshold,omitempty"`
	Bounds    *Bounds   `json:"bounds,omitempty"`
	Temps     []float64 `json:"temps"`
}

// Report is a point-in-time view of a series.
type Report struct {
	Count           int                               `json:"count"`
	Capacity        int                               `json:"capacity"`
	Summary         *tempseries.TempSummaryStatistics `json:"summary,omitempty"`
	ClosestToZero   *float64                          `json:"closest_to_zero,omitempty"`
	Target          *float64                          `json:"target,omitempty"`
	ClosestToTarget *float64                          `json:"closest_to_target,omitempty"`
	LessThan        *Filter                           `json:"less_than,omitempty"`
	GreaterThan     *Filter                           `json:"greater_than,omitempty"`
	InRange         *Filter                           `json:"in_range,omitempty"`
	Sorted          []float64                         `json:"sorted"`
}

// Build runs every query against a. Statistics that are undefined on an
// empty series are omitted rather than reported as errors.
func Build(a *tempseries.Analysis, q Query) (*Report, error) {
	r := &Report{
		Count:    a.Len(),
		Capacity: a.Cap(),
		Sorted:   a.Sorted(),
	}

	summary, err := a.SummaryStatistics()
	switch {
	case err == nil:
		r.Summary = &summary
	case !errors.Is(err, tempseries.ErrEmptySeries):
		return nil, err
	}

	if r.Summary != nil {
		zero, err := a.ClosestToZero()
		if err != nil {
			return nil, err
		}
		r.ClosestToZero = &zero

		if q.Target != nil {
			closest, err := a.ClosestToValue(*q.Target)
			if err != nil {
				return nil, err
			}
			r.Target = q.Target
			r.ClosestToTarget = &closest
		}
	}

	if q.LessThan != nil {
		r.LessThan = &Filter{Threshold: q.LessThan, Temps: a.LessThan(*q.LessThan)}
	}
	if q.GreaterThan != nil {
		r.GreaterThan = &Filter{Threshold: q.GreaterThan, Temps: a.GreaterThan(*q.GreaterThan)}
	}
	if q.Range != nil {
		r.InRange = &Filter{Bounds: q.Range, Temps: a.InRange(q.Range.Lower, q.Range.Upper)}
	}

	return r, nil
}

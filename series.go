package yieldcurve

import (
	"errors"
	"fmt"
	"iter"
)

// ErrEmptySeries is returned when a computation needs at least one observation.
var ErrEmptySeries = errors.New("yield series is empty")

// Observation holds the four yields quoted on a single day, in percent.
type Observation [numMaturities]float64

// Yield returns the yield quoted for the given tenor.
func (o Observation) Yield(m Maturity) float64 { return o[m] }

// Spread returns the 10Y-2Y spread, the most watched inversion indicator.
func (o Observation) Spread() float64 { return o[Y10] - o[Y2] }

// YieldSeries stores a chronological daily series of yield observations.
// It ensures that dates are contiguous (one observation per calendar day)
// and always sorted. The series is immutable once built; derived values
// like spreads are computed into new structures, never appended in place.
type YieldSeries struct {
	days []Date
	obs  []Observation
}

// newYieldSeries builds a series from parallel day/observation slices,
// enforcing the contiguity invariant. Both slices are retained.
func newYieldSeries(days []Date, obs []Observation) (*YieldSeries, error) {
	if len(days) != len(obs) {
		return nil, fmt.Errorf("mismatched series columns: %d dates for %d observations", len(days), len(obs))
	}
	for i := 1; i < len(days); i++ {
		if days[i] != days[i-1].Add(1) {
			return nil, fmt.Errorf("series is not daily: %s follows %s", days[i], days[i-1])
		}
	}
	return &YieldSeries{days: days, obs: obs}, nil
}

// Len returns the number of observations in the series.
func (s *YieldSeries) Len() int { return len(s.days) }

// Range returns the date range covered by the series, boundaries included.
// The zero Range is returned for an empty series.
func (s *YieldSeries) Range() Range {
	if s.Len() == 0 {
		return Range{}
	}
	return Range{From: s.days[0], To: s.days[len(s.days)-1]}
}

// At returns the i-th observation and its date, in chronological order.
func (s *YieldSeries) At(i int) (Date, Observation) { return s.days[i], s.obs[i] }

// Latest returns the most recent observation.
// If the series is empty, it returns ErrEmptySeries.
func (s *YieldSeries) Latest() (Date, Observation, error) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, Observation{}, ErrEmptySeries
	}
	return s.days[last], s.obs[last], nil
}

// Values returns an iterator over all date/observation pairs in the series,
// in chronological order.
func (s *YieldSeries) Values() iter.Seq2[Date, Observation] {
	return func(yield func(Date, Observation) bool) {
		for i, on := range s.days {
			if !yield(on, s.obs[i]) {
				return
			}
		}
	}
}

// Column returns the yields of a single tenor, in chronological order.
func (s *YieldSeries) Column(m Maturity) []float64 {
	col := make([]float64, len(s.obs))
	for i, o := range s.obs {
		col[i] = o[m]
	}
	return col
}

// Equal reports whether two series hold exactly the same dates and yields.
func (s *YieldSeries) Equal(t *YieldSeries) bool {
	if s.Len() != t.Len() {
		return false
	}
	for i := range s.days {
		if s.days[i] != t.days[i] || s.obs[i] != t.obs[i] {
			return false
		}
	}
	return true
}

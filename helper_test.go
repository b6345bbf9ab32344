package yieldcurve

import "testing"

// newTestSeries builds a contiguous daily series starting at 'start' from
// literal observations.
func newTestSeries(t *testing.T, start Date, obs ...Observation) *YieldSeries {
	t.Helper()
	days := make([]Date, len(obs))
	for i := range obs {
		days[i] = start.Add(i)
	}
	s, err := newYieldSeries(days, obs)
	if err != nil {
		t.Fatalf("cannot build test series: %v", err)
	}
	return s
}

// obs is a shorthand to write an observation as {3M, 2Y, 10Y, 30Y}.
func obs(m3, y2, y10, y30 float64) Observation {
	return Observation{M3: m3, Y2: y2, Y10: y10, Y30: y30}
}

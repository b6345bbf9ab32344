package yieldcurve

import "testing"

func TestSeriesColumn(t *testing.T) {
	s := newTestSeries(t, NewDate(2025, 8, 29),
		obs(2.0, 2.5, 3.2, 3.5),
		obs(2.1, 2.6, 3.3, 3.6),
		obs(2.2, 2.7, 3.4, 3.7),
	)

	col := s.Column(Y10)
	want := []float64{3.2, 3.3, 3.4}
	if len(col) != len(want) {
		t.Fatalf("Column(Y10) has %d values, want %d", len(col), len(want))
	}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("Column(Y10)[%d] = %v, want %v", i, col[i], want[i])
		}
	}

	// the column is a copy, not a view
	col[0] = 99
	if _, o := s.At(0); o[Y10] != 3.2 {
		t.Errorf("mutating a column changed the series")
	}
}

func TestSeriesEqual(t *testing.T) {
	a := newTestSeries(t, NewDate(2025, 8, 30), obs(2, 2.5, 3.2, 3.5))
	b := newTestSeries(t, NewDate(2025, 8, 30), obs(2, 2.5, 3.2, 3.5))
	c := newTestSeries(t, NewDate(2025, 8, 30), obs(2, 2.5, 3.2, 3.6))
	d := newTestSeries(t, NewDate(2025, 8, 31), obs(2, 2.5, 3.2, 3.5))

	if !a.Equal(b) {
		t.Errorf("identical series compare unequal")
	}
	if a.Equal(c) {
		t.Errorf("series with different yields compare equal")
	}
	if a.Equal(d) {
		t.Errorf("series with different dates compare equal")
	}
}

func TestNewYieldSeriesRejectsGaps(t *testing.T) {
	days := []Date{NewDate(2025, 8, 29), NewDate(2025, 8, 31)}
	o := []Observation{obs(2, 2.5, 3.2, 3.5), obs(2, 2.5, 3.2, 3.5)}
	if _, err := newYieldSeries(days, o); err == nil {
		t.Errorf("newYieldSeries accepted a gap between days")
	}
}

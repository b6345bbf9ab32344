package yieldcurve

import (
	"math"
	"testing"
)

func TestDetectInversions(t *testing.T) {
	start := NewDate(2025, 8, 25)
	s := newTestSeries(t, start,
		obs(2.0, 2.50, 3.20, 3.5), // spread +0.70
		obs(2.0, 3.30, 3.20, 3.5), // spread -0.10, inverted
		obs(2.0, 3.20, 3.20, 3.5), // spread 0, flat curve, NOT inverted
		obs(2.0, 3.45, 3.20, 3.5), // spread -0.25, deepest
		obs(2.0, 3.25, 3.20, 3.5), // spread -0.05, most recent inversion
		obs(2.0, 2.60, 3.20, 3.5), // spread +0.60
	)

	summary := DetectInversions(s)

	if summary.TotalDays != 6 {
		t.Errorf("TotalDays = %d, want 6", summary.TotalDays)
	}
	if summary.InvertedDays != 3 {
		t.Errorf("InvertedDays = %d, want 3 (zero spread must not count)", summary.InvertedDays)
	}
	if want := 3.0 / 6.0; summary.Fraction() != want {
		t.Errorf("Fraction() = %v, want %v", summary.Fraction(), want)
	}
	if want := start.Add(4); summary.MostRecent != want {
		t.Errorf("MostRecent = %s, want %s", summary.MostRecent, want)
	}
	if want := Percent(-0.25); !summary.Deepest.Equal(want) {
		t.Errorf("Deepest = %v, want %v", summary.Deepest, want)
	}
}

func TestDetectInversionsNone(t *testing.T) {
	s := newTestSeries(t, NewDate(2025, 8, 30),
		obs(2.0, 2.5, 3.2, 3.5),
		obs(2.0, 2.6, 3.3, 3.5),
	)
	summary := DetectInversions(s)
	if summary.InvertedDays != 0 {
		t.Errorf("InvertedDays = %d, want 0", summary.InvertedDays)
	}
	if !summary.MostRecent.IsZero() {
		t.Errorf("MostRecent = %s, want zero date when no inversion", summary.MostRecent)
	}
	if summary.Fraction() != 0 {
		t.Errorf("Fraction() = %v, want 0", summary.Fraction())
	}
}

// TestDetectInversionsEmptySeries pins the explicit policy for an empty
// series: a zero summary with fraction 0, not a division error.
func TestDetectInversionsEmptySeries(t *testing.T) {
	var s YieldSeries
	summary := DetectInversions(&s)
	if summary.TotalDays != 0 || summary.InvertedDays != 0 {
		t.Errorf("DetectInversions(empty) = %+v, want zero summary", summary)
	}
	if got := summary.Fraction(); got != 0 || math.IsNaN(got) {
		t.Errorf("Fraction() on empty series = %v, want 0", got)
	}
}

// TestDetectInversionsMatchesManualRecount cross-checks the detector on a
// generated series against a naive recomputation of the spreads.
func TestDetectInversionsMatchesManualRecount(t *testing.T) {
	s, err := GenerateFrom(NewDate(2025, 8, 31), 365, DefaultSeed)
	if err != nil {
		t.Fatalf("GenerateFrom() error = %v", err)
	}

	inverted := 0
	deepest := math.Inf(1)
	for _, o := range s.obs {
		if spread := o[Y10] - o[Y2]; spread < 0 {
			inverted++
			deepest = math.Min(deepest, spread)
		}
	}

	summary := DetectInversions(s)
	if summary.InvertedDays != inverted {
		t.Errorf("InvertedDays = %d, want %d from manual recount", summary.InvertedDays, inverted)
	}
	if inverted > 0 && !summary.Deepest.Equal(Percent(deepest)) {
		t.Errorf("Deepest = %v, want %v from manual recount", summary.Deepest, deepest)
	}
}

func TestSpreadsIsPure(t *testing.T) {
	s := newTestSeries(t, NewDate(2025, 8, 30),
		obs(2.0, 2.5, 3.2, 3.5),
		obs(2.0, 3.3, 3.2, 3.5),
	)
	sp := Spreads(s)
	if sp.Len() != s.Len() {
		t.Fatalf("Spreads().Len() = %d, want %d", sp.Len(), s.Len())
	}

	i := 0
	want := []float64{0.7, -0.1}
	for on, spread := range sp.Values() {
		d, o := s.At(i)
		if on != d {
			t.Errorf("spread date[%d] = %s, want %s", i, on, d)
		}
		if math.Abs(spread-want[i]) > 1e-12 {
			t.Errorf("spread[%d] = %v, want %v", i, spread, want[i])
		}
		// the source observation is untouched
		if o != s.obs[i] {
			t.Errorf("source series mutated at %d", i)
		}
		i++
	}
}

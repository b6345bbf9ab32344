package yieldcurve

import (
	"errors"
	"testing"
)

func TestComputeMetrics(t *testing.T) {
	start := NewDate(2025, 8, 29)
	s := newTestSeries(t, start,
		obs(2.00, 2.50, 3.20, 3.50),
		obs(1.95, 2.48, 3.25, 3.55), // latest record, the only one that matters
	)

	m, err := ComputeMetrics(s)
	if err != nil {
		t.Fatalf("ComputeMetrics() error = %v", err)
	}

	if m.Date != start.Add(1) {
		t.Errorf("Metrics.Date = %s, want %s", m.Date, start.Add(1))
	}
	if want := Percent(3.25 - 2.48); !m.Slope.Equal(want) {
		t.Errorf("Slope = %v, want %v", m.Slope, want)
	}
	if want := Percent(3.55 - 1.95); !m.Steepness.Equal(want) {
		t.Errorf("Steepness = %v, want %v", m.Steepness, want)
	}
	if want := Percent(1.95); !m.ShortRate.Equal(want) {
		t.Errorf("ShortRate = %v, want %v", m.ShortRate, want)
	}
	if want := Percent(3.55); !m.LongRate.Equal(want) {
		t.Errorf("LongRate = %v, want %v", m.LongRate, want)
	}
	if m.Condition != CurveNormal {
		t.Errorf("Condition = %q, want %q", m.Condition, CurveNormal)
	}
}

func TestComputeMetricsInverted(t *testing.T) {
	s := newTestSeries(t, NewDate(2025, 8, 30),
		obs(2.00, 3.30, 3.20, 3.50), // 2Y above 10Y
	)
	m, err := ComputeMetrics(s)
	if err != nil {
		t.Fatalf("ComputeMetrics() error = %v", err)
	}
	if m.Condition != CurveInverted {
		t.Errorf("Condition = %q, want %q", m.Condition, CurveInverted)
	}
	if m.Slope >= 0 {
		t.Errorf("Slope = %v, want negative on an inverted curve", m.Slope)
	}
}

// TestMetricsReconstruction checks that the metrics of a generated series
// are consistent with raw yield differences on its last record.
func TestMetricsReconstruction(t *testing.T) {
	s, err := GenerateFrom(NewDate(2025, 8, 31), 365, DefaultSeed)
	if err != nil {
		t.Fatalf("GenerateFrom() error = %v", err)
	}
	_, last, err := s.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	m, err := ComputeMetrics(s)
	if err != nil {
		t.Fatalf("ComputeMetrics() error = %v", err)
	}

	if want := Percent(last[Y10] - last[Y2]); !m.Slope.Equal(want) {
		t.Errorf("Slope = %v, want %v from raw yields", m.Slope, want)
	}
	if want := Percent(last[Y30] - last[M3]); !m.Steepness.Equal(want) {
		t.Errorf("Steepness = %v, want %v from raw yields", m.Steepness, want)
	}
	wantCondition := CurveNormal
	if last[Y2] > last[Y10] {
		wantCondition = CurveInverted
	}
	if m.Condition != wantCondition {
		t.Errorf("Condition = %q, want %q from raw comparison", m.Condition, wantCondition)
	}
}

func TestComputeMetricsEmptySeries(t *testing.T) {
	var s YieldSeries
	if _, err := ComputeMetrics(&s); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("ComputeMetrics(empty) error = %v, want ErrEmptySeries", err)
	}
	if _, err := s.Snapshot(); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("Snapshot(empty) error = %v, want ErrEmptySeries", err)
	}
}

func TestSnapshotMaturities(t *testing.T) {
	s := newTestSeries(t, NewDate(2025, 8, 31), obs(2.0, 2.5, 3.2, 3.5))
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	wantYears := []float64{0.25, 2, 10, 30}
	for i, pt := range snap.Points {
		if pt.Years != wantYears[i] {
			t.Errorf("Points[%d].Years = %v, want %v", i, pt.Years, wantYears[i])
		}
	}
}

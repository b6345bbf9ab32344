package yieldcurve

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidWindow is returned when a lookback window is negative.
var ErrInvalidWindow = errors.New("lookback window must not be negative")

// DefaultWindow is the lookback window, in days, used when none is given.
const DefaultWindow = 365

// DefaultSeed is the seed of the original dataset. Any fixed seed is
// reproducible; this one is kept for continuity with published results.
const DefaultSeed = 42

// baseYields anchor each random walk on a normal upward-sloping curve.
var baseYields = [numMaturities]float64{
	M3:  2.0,
	Y2:  2.5,
	Y10: 3.2,
	Y30: 3.5,
}

const (
	stepStdDev = 0.1  // standard deviation of one Gaussian perturbation
	stepScale  = 0.01 // scale applied to each perturbation before summing
)

// Generate produces a synthetic daily yield series covering
// [today-window, today], both endpoints included.
//
// Each tenor follows an independent discrete random walk: its base yield
// plus a cumulative sum of zero-mean Gaussian perturbations drawn from the
// given seed. Two calls with the same window and seed produce bit-identical
// series. No cross-maturity correlation is modeled; that is a deliberate
// simplification of the dataset, not an accident.
func Generate(window int, seed int64) (*YieldSeries, error) {
	return GenerateFrom(Today(), window, seed)
}

// GenerateFrom is like Generate but ends the series on an arbitrary day
// instead of today. It exists so that callers can pin the calendar as well
// as the seed.
func GenerateFrom(end Date, window int, seed int64) (*YieldSeries, error) {
	if window < 0 {
		return nil, fmt.Errorf("invalid lookback of %d days: %w", window, ErrInvalidWindow)
	}

	n := window + 1 // both endpoints included
	days := make([]Date, n)
	start := end.Add(-window)
	for i := range days {
		days[i] = start.Add(i)
	}

	// One walk per tenor, all drawn from a single explicitly seeded source.
	// The draw order (full column per tenor) is part of the reproducibility
	// contract and must not change.
	rng := rand.New(rand.NewSource(seed))
	obs := make([]Observation, n)
	for _, m := range Maturities {
		level := baseYields[m]
		for i := range obs {
			level += rng.NormFloat64() * stepStdDev * stepScale
			obs[i][m] = level
		}
	}

	return newYieldSeries(days, obs)
}

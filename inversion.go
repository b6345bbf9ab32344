package yieldcurve

import "iter"

// SpreadSeries is the per-day 10Y-2Y spread derived from a yield series.
// It is a separate structure: deriving it never mutates the source series.
type SpreadSeries struct {
	days   []Date
	values []float64
}

// Spreads computes the 10Y-2Y spread for every observation of the series.
func Spreads(s *YieldSeries) SpreadSeries {
	sp := SpreadSeries{
		days:   make([]Date, s.Len()),
		values: make([]float64, s.Len()),
	}
	for i, o := range s.obs {
		sp.days[i] = s.days[i]
		sp.values[i] = o.Spread()
	}
	return sp
}

// Len returns the number of spread points.
func (sp SpreadSeries) Len() int { return len(sp.days) }

// Values returns an iterator over all date/spread pairs, in chronological order.
func (sp SpreadSeries) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range sp.days {
			if !yield(on, sp.values[i]) {
				return
			}
		}
	}
}

// InversionSummary describes how often, and how deeply, the 10Y-2Y spread
// went negative over a series. A day with a spread of exactly zero is a
// flat curve, not an inverted one, and is not counted.
type InversionSummary struct {
	TotalDays    int
	InvertedDays int
	MostRecent   Date    // zero when no inversion occurred
	Deepest      Percent // meaningful only when InvertedDays > 0
}

// Fraction returns the share of days spent inverted, in [0, 1].
// An empty series yields 0, not a division error: no observation means no
// inversion was observed.
func (is InversionSummary) Fraction() float64 {
	if is.TotalDays == 0 {
		return 0
	}
	return float64(is.InvertedDays) / float64(is.TotalDays)
}

// DetectInversions scans the whole series for days where the 10Y-2Y spread
// is strictly negative and summarizes their frequency and depth.
func DetectInversions(s *YieldSeries) InversionSummary {
	summary := InversionSummary{TotalDays: s.Len()}
	for on, spread := range Spreads(s).Values() {
		if spread >= 0 {
			continue
		}
		summary.InvertedDays++
		summary.MostRecent = on // chronological scan, last hit wins
		if summary.InvertedDays == 1 || Percent(spread) < summary.Deepest {
			summary.Deepest = Percent(spread)
		}
	}
	return summary
}

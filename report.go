package yieldcurve

// Report aggregates everything the analysis renders for one run: the range
// of the dataset, the current curve metrics and the inversion summary.
type Report struct {
	Range        Range
	Observations int
	Snapshot     CurveSnapshot
	Metrics      Metrics
	Inversions   InversionSummary
}

// NewReport computes the full analysis report for a series.
// It returns ErrEmptySeries if the series has no observation.
func NewReport(s *YieldSeries) (*Report, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	metrics, err := ComputeMetrics(s)
	if err != nil {
		return nil, err
	}
	return &Report{
		Range:        s.Range(),
		Observations: s.Len(),
		Snapshot:     snap,
		Metrics:      metrics,
		Inversions:   DetectInversions(s),
	}, nil
}

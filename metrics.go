package yieldcurve

// Condition qualifies the shape of the curve at a point in time.
type Condition string

const (
	// CurveNormal is the usual upward-sloping regime: 10Y above 2Y.
	CurveNormal Condition = "Normal"
	// CurveInverted means the 2Y yield exceeds the 10Y yield.
	CurveInverted Condition = "Inverted"
)

// CurvePoint is one maturity of a curve snapshot.
type CurvePoint struct {
	Maturity Maturity
	Years    float64 // time to maturity, in years
	Yield    float64 // percent
}

// CurveSnapshot is the yield curve observed on a single day: the four
// quoted yields paired with their time to maturity. It is derived from
// the latest observation of a series and recomputed on demand.
type CurveSnapshot struct {
	Date   Date
	Points [numMaturities]CurvePoint
}

// Snapshot returns the curve observed on the most recent day of the series.
// It returns ErrEmptySeries if the series has no observation.
func (s *YieldSeries) Snapshot() (CurveSnapshot, error) {
	on, obs, err := s.Latest()
	if err != nil {
		return CurveSnapshot{}, err
	}
	snap := CurveSnapshot{Date: on}
	for i, m := range Maturities {
		snap.Points[i] = CurvePoint{Maturity: m, Years: m.Years(), Yield: obs[m]}
	}
	return snap, nil
}

// Metrics holds the point-in-time curve metrics derived from the latest
// observation of a series.
type Metrics struct {
	Date      Date
	Slope     Percent // 10Y - 2Y
	Steepness Percent // 30Y - 3M
	ShortRate Percent // 3M
	LongRate  Percent // 30Y
	Condition Condition
}

// ComputeMetrics derives the curve metrics from the final record of the
// series. It returns ErrEmptySeries if the series has no observation.
func ComputeMetrics(s *YieldSeries) (Metrics, error) {
	on, obs, err := s.Latest()
	if err != nil {
		return Metrics{}, err
	}

	condition := CurveNormal
	if obs[Y2] > obs[Y10] {
		condition = CurveInverted
	}

	return Metrics{
		Date:      on,
		Slope:     Percent(obs[Y10] - obs[Y2]),
		Steepness: Percent(obs[Y30] - obs[M3]),
		ShortRate: Percent(obs[M3]),
		LongRate:  Percent(obs[Y30]),
		Condition: condition,
	}, nil
}

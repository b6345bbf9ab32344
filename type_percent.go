package yieldcurve

import "github.com/shopspring/decimal"

// Percent is a yield or spread expressed in percentage points. The full
// float64 precision is kept internally; only display is rounded.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String renders the value with two-decimal display precision, e.g. "3.20%".
func (p Percent) String() string {
	return decimal.NewFromFloat(float64(p)).StringFixed(2) + "%"
}

// SignedString is like String but with an explicit sign, e.g. "+0.70%".
func (p Percent) SignedString() string {
	d := decimal.NewFromFloat(float64(p))
	if d.IsNegative() {
		return d.StringFixed(2) + "%"
	}
	return "+" + d.StringFixed(2) + "%"
}

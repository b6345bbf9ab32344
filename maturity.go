package yieldcurve

import (
	"fmt"
	"strings"
)

// Maturity identifies one of the four quoted Treasury tenors.
type Maturity int

const (
	M3 Maturity = iota // 3-month bill
	Y2                 // 2-year note
	Y10                // 10-year note
	Y30                // 30-year bond
)

const numMaturities = 4

// Maturities lists all quoted tenors in ascending time-to-maturity order.
var Maturities = [numMaturities]Maturity{M3, Y2, Y10, Y30}

// Years returns the time-to-maturity expressed in years.
func (m Maturity) Years() float64 {
	switch m {
	case M3:
		return 0.25
	case Y2:
		return 2
	case Y10:
		return 10
	case Y30:
		return 30
	default:
		panic(fmt.Sprintf("unknown maturity %d", m))
	}
}

func (m Maturity) String() string {
	switch m {
	case M3:
		return "3M"
	case Y2:
		return "2Y"
	case Y10:
		return "10Y"
	case Y30:
		return "30Y"
	default:
		panic(fmt.Sprintf("unknown maturity %d", m))
	}
}

// Label returns the long human readable name of the tenor.
func (m Maturity) Label() string {
	switch m {
	case M3:
		return "3-Month"
	case Y2:
		return "2-Year"
	case Y10:
		return "10-Year"
	case Y30:
		return "30-Year"
	default:
		panic(fmt.Sprintf("unknown maturity %d", m))
	}
}

// ParseMaturity parses a tenor from its short form ("3M", "2Y", "10Y", "30Y").
func ParseMaturity(s string) (Maturity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "3M":
		return M3, nil
	case "2Y":
		return Y2, nil
	case "10Y":
		return Y10, nil
	case "30Y":
		return Y30, nil
	default:
		return M3, fmt.Errorf("unknown maturity %q", s)
	}
}

package rates

import (
	"math"
	"time"
)

// Curve provides discount factors. Forward rates are implied from the ratio of two
// discount factors.
type Curve interface {
	DF(t time.Time) float64
}

// FlatCurve is a continuously compounded constant zero rate on an ACT/365F time axis.
type FlatCurve struct {
	ValuationDate time.Time
	Rate          float64 // decimal, 0.05 == 5%
}

func (c FlatCurve) DF(t time.Time) float64 {
	return math.Exp(-c.Rate * YearFraction(c.ValuationDate, t))
}

// YearFraction is ACT/365F.
func YearFraction(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24 / 365
}

// ForwardRate is the simply compounded forward rate implied by c over [start, end].
func ForwardRate(c Curve, start, end time.Time) float64 {
	tau := YearFraction(start, end)
	if tau <= 0 {
		return 0
	}

	return (c.DF(start)/c.DF(end) - 1) / tau
}

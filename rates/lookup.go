package rates

import (
	"fmt"

	"github.com/sgostarter/libmarketdata/curvegroup"
	"github.com/sgostarter/libmarketdata/marketdata"
)

var (
	ErrNoDiscountCurve = fmt.Errorf("no discount curve: %w", marketdata.ErrValueNotFound)
	ErrNoForwardCurve  = fmt.Errorf("no forward curve: %w", marketdata.ErrValueNotFound)
)

// Lookup maps currencies to discount curves and indices to forward curves, following the
// roles of a curve group definition. The curves themselves live in market data under
// marketdata.CurveKey[Curve](curveName).
type Lookup struct {
	def *curvegroup.Definition
}

func NewLookup(def *curvegroup.Definition) *Lookup {
	return &Lookup{
		def: def,
	}
}

func (lookup *Lookup) Definition() *curvegroup.Definition {
	return lookup.def
}

func (lookup *Lookup) DiscountCurveKey(ccy curvegroup.Currency) (marketdata.Key[Curve], error) {
	name, ok := lookup.def.DiscountCurveName(ccy)
	if !ok {
		return marketdata.Key[Curve]{}, fmt.Errorf("%w: currency %s in group %s", ErrNoDiscountCurve, ccy, lookup.def.Name())
	}

	return marketdata.CurveKey[Curve](string(name)), nil
}

func (lookup *Lookup) ForwardCurveKey(index curvegroup.Index) (marketdata.Key[Curve], error) {
	name, ok := lookup.def.ForwardCurveName(index)
	if !ok {
		return marketdata.Key[Curve]{}, fmt.Errorf("%w: index %s in group %s", ErrNoForwardCurve, index, lookup.def.Name())
	}

	return marketdata.CurveKey[Curve](string(name)), nil
}

// CurveKeys lists the market data keys of every curve of the group.
func (lookup *Lookup) CurveKeys() []marketdata.Key[Curve] {
	names := lookup.def.CurveNames()

	keys := make([]marketdata.Key[Curve], len(names))
	for idx, name := range names {
		keys[idx] = marketdata.CurveKey[Curve](string(name))
	}

	return keys
}

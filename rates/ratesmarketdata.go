package rates

import (
	"time"

	"github.com/sgostarter/libmarketdata/curvegroup"
	"github.com/sgostarter/libmarketdata/marketdata"
)

// RatesMarketData is the view of single scenario market data used to price rates products.
type RatesMarketData interface {
	Lookup() *Lookup
	MarketData() marketdata.MarketData
	// WithMarketData returns a view over other market data with the same lookup.
	WithMarketData(md marketdata.MarketData) RatesMarketData

	ValuationDate() (time.Time, error)
	DiscountCurve(ccy curvegroup.Currency) (Curve, error)
	ForwardCurve(index curvegroup.Index) (Curve, error)
	DiscountFactor(ccy curvegroup.Currency, date time.Time) (float64, error)
}

func NewRatesMarketData(lookup *Lookup, md marketdata.MarketData) RatesMarketData {
	return &ratesMarketDataImpl{
		lookup: lookup,
		md:     md,
	}
}

// NewScenarioRatesMarketData is the rates view of scenario scenarioIndex of md.
func NewScenarioRatesMarketData(lookup *Lookup, md marketdata.ScenarioMarketData, scenarioIndex int) RatesMarketData {
	return NewRatesMarketData(lookup, marketdata.NewSingleScenarioMarketData(md, scenarioIndex))
}

type ratesMarketDataImpl struct {
	lookup *Lookup
	md     marketdata.MarketData
}

func (impl *ratesMarketDataImpl) Lookup() *Lookup {
	return impl.lookup
}

func (impl *ratesMarketDataImpl) MarketData() marketdata.MarketData {
	return impl.md
}

func (impl *ratesMarketDataImpl) WithMarketData(md marketdata.MarketData) RatesMarketData {
	return NewRatesMarketData(impl.lookup, md)
}

func (impl *ratesMarketDataImpl) ValuationDate() (time.Time, error) {
	return impl.md.ValuationDate()
}

func (impl *ratesMarketDataImpl) DiscountCurve(ccy curvegroup.Currency) (Curve, error) {
	key, err := impl.lookup.DiscountCurveKey(ccy)
	if err != nil {
		return nil, err
	}

	return marketdata.Value(impl.md, key)
}

func (impl *ratesMarketDataImpl) ForwardCurve(index curvegroup.Index) (Curve, error) {
	key, err := impl.lookup.ForwardCurveKey(index)
	if err != nil {
		return nil, err
	}

	return marketdata.Value(impl.md, key)
}

func (impl *ratesMarketDataImpl) DiscountFactor(ccy curvegroup.Currency, date time.Time) (float64, error) {
	curve, err := impl.DiscountCurve(ccy)
	if err != nil {
		return 0, err
	}

	return curve.DF(date), nil
}

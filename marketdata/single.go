package marketdata

import (
	"fmt"
	"time"

	"github.com/sgostarter/libmarketdata/timeseries"
)

// NewSingleScenarioMarketData projects one scenario of md. The view holds no state of its
// own and must not outlive md.
func NewSingleScenarioMarketData(md ScenarioMarketData, scenarioIndex int) MarketData {
	return &singleScenarioMarketDataImpl{
		md:            md,
		scenarioIndex: scenarioIndex,
	}
}

type singleScenarioMarketDataImpl struct {
	md            ScenarioMarketData
	scenarioIndex int
}

func (impl *singleScenarioMarketDataImpl) ScenarioIndex() int {
	return impl.scenarioIndex
}

func (impl *singleScenarioMarketDataImpl) ValuationDate() (time.Time, error) {
	return impl.md.ValuationDate().Value(impl.scenarioIndex)
}

func (impl *singleScenarioMarketDataImpl) ContainsValue(key AnyKey) bool {
	return impl.md.ContainsValue(key)
}

func (impl *singleScenarioMarketDataImpl) LookupValue(key AnyKey) (any, error) {
	v, err := impl.md.LookupValue(key)
	if err != nil {
		return nil, err
	}

	box, ok := v.(boxed)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T", ErrValueTypeMismatch, key, v)
	}

	return box.anyValue(impl.scenarioIndex)
}

func (impl *singleScenarioMarketDataImpl) ContainsTimeSeries(id ObservableID) bool {
	return impl.md.ContainsTimeSeries(id)
}

func (impl *singleScenarioMarketDataImpl) TimeSeries(id ObservableID) timeseries.Series {
	return impl.md.TimeSeries(id)
}

// Value returns the value stored for key in the single scenario view md.
func Value[T any](md MarketData, key Key[T]) (v T, err error) {
	raw, err := md.LookupValue(key)
	if err != nil {
		return
	}

	v, ok := raw.(T)
	if !ok {
		err = fmt.Errorf("%w: %s holds %T", ErrValueTypeMismatch, key, raw)
	}

	return
}

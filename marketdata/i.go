package marketdata

import (
	"time"

	"github.com/sgostarter/libmarketdata/timeseries"
)

// ScenarioMarketData is the market data of one calculation run across all its scenarios.
// Implementations are read-only once built and safe for concurrent use.
type ScenarioMarketData interface {
	RunID() uint64
	ScenarioCount() int
	ValuationDate() Box[time.Time]

	ContainsValue(key AnyKey) bool
	// LookupValue returns the Box stored for key, typed by the key's value type.
	LookupValue(key AnyKey) (any, error)

	ContainsTimeSeries(id ObservableID) bool
	// TimeSeries returns an empty series when none is stored.
	TimeSeries(id ObservableID) timeseries.Series
}

// MarketData is the single scenario view consumed by pricing code.
type MarketData interface {
	ValuationDate() (time.Time, error)

	ContainsValue(key AnyKey) bool
	// LookupValue returns the value stored for key, typed by the key's value type.
	LookupValue(key AnyKey) (any, error)

	ContainsTimeSeries(id ObservableID) bool
	TimeSeries(id ObservableID) timeseries.Series
}

// scenarioValueMemo is implemented by scenario market data that caches derived scenario
// values.
type scenarioValueMemo interface {
	memoizeScenarioValue(cacheKey string, create func() (any, error)) (any, error)
}

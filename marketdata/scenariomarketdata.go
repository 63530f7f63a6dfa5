package marketdata

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libmarketdata/timeseries"
)

// NewScenarioMarketData builds the market data of a run with scenarioCount scenarios. Every
// scenario box, the valuation date included, must hold exactly scenarioCount values.
func NewScenarioMarketData(scenarioCount int, valuationDate Box[time.Time], options ...Option) (ScenarioMarketData, error) {
	opts := optionNew(options...)

	logger := opts.logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	runID := opts.runID
	if runID == 0 {
		runID = snowflake.ID()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "scenarioMarketDataImpl"), l.UInt64Field("runID", runID))

	if scenarioCount < 1 {
		return nil, fmt.Errorf("%w: scenario count %d", commerr.ErrInvalidArgument, scenarioCount)
	}

	if err := checkScenarioCount("valuation date", valuationDate, scenarioCount); err != nil {
		logger.WithFields(l.ErrorField(err)).Warn("invalid valuation date box")

		return nil, err
	}

	values := make(map[AnyKey]boxed, len(opts.values))

	for key, box := range opts.values {
		if err := checkScenarioCount(key.String(), box, scenarioCount); err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("key", key.String())).Warn("invalid market data box")

			return nil, err
		}

		values[key] = box.boundTo(scenarioCount)
	}

	impl := &scenarioMarketDataImpl{
		logger:        logger,
		runID:         runID,
		scenarioCount: scenarioCount,
		valuationDate: valuationDate.boundTo(scenarioCount).(Box[time.Time]),
		values:        values,
		timeSeries:    opts.timeSeries,
		cachedValues:  cache.New(cache.NoExpiration, 0),
	}

	logger.WithFields(l.IntField("scenarioCount", scenarioCount), l.IntField("values", len(values)),
		l.IntField("timeSeries", len(impl.timeSeries))).Debug("scenario market data built")

	return impl, nil
}

func checkScenarioCount(name string, box boxed, scenarioCount int) error {
	if box.boxKind() == BoxKindScenario && box.boxScenarioCount() != scenarioCount {
		return fmt.Errorf("%w: %s has %d scenario values, market data has %d scenarios",
			ErrScenarioCountMismatch, name, box.boxScenarioCount(), scenarioCount)
	}

	return nil
}

type scenarioMarketDataImpl struct {
	logger l.Wrapper

	runID         uint64
	scenarioCount int
	valuationDate Box[time.Time]
	values        map[AnyKey]boxed
	timeSeries    map[ObservableID]timeseries.Series

	// the only mutable state: scenario values built on demand, one per scenario key
	cachedValues *cache.Cache
}

func (impl *scenarioMarketDataImpl) RunID() uint64 {
	return impl.runID
}

func (impl *scenarioMarketDataImpl) ScenarioCount() int {
	return impl.scenarioCount
}

func (impl *scenarioMarketDataImpl) ValuationDate() Box[time.Time] {
	return impl.valuationDate
}

func (impl *scenarioMarketDataImpl) ContainsValue(key AnyKey) bool {
	if key == nil {
		return false
	}

	_, ok := impl.values[key]

	return ok
}

func (impl *scenarioMarketDataImpl) LookupValue(key AnyKey) (any, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil key", commerr.ErrInvalidArgument)
	}

	box, ok := impl.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrValueNotFound, key)
	}

	return box, nil
}

func (impl *scenarioMarketDataImpl) ContainsTimeSeries(id ObservableID) bool {
	_, ok := impl.timeSeries[id]

	return ok
}

func (impl *scenarioMarketDataImpl) TimeSeries(id ObservableID) timeseries.Series {
	series, ok := impl.timeSeries[id]
	if !ok {
		return timeseries.Empty()
	}

	return series
}

// memoizeScenarioValue stores the first value built for cacheKey. Concurrent first
// callers may each build a value; the one stored first is returned to all of them.
func (impl *scenarioMarketDataImpl) memoizeScenarioValue(cacheKey string, create func() (any, error)) (any, error) {
	if v, ok := impl.cachedValues.Get(cacheKey); ok {
		return v, nil
	}

	v, err := create()
	if err != nil {
		return nil, err
	}

	impl.logger.WithFields(l.StringField("key", cacheKey), l.IntField("scenarioCount", impl.scenarioCount)).
		Debug("scenario value built on demand")

	if err = impl.cachedValues.Add(cacheKey, v, cache.NoExpiration); err != nil {
		if stored, ok := impl.cachedValues.Get(cacheKey); ok {
			return stored, nil
		}
	}

	return v, nil
}

// GetValue returns the box stored for key.
func GetValue[T any](md ScenarioMarketData, key Key[T]) (Box[T], error) {
	v, err := md.LookupValue(key)
	if err != nil {
		return Box[T]{}, err
	}

	box, ok := v.(Box[T])
	if !ok {
		return Box[T]{}, fmt.Errorf("%w: %s holds %T", ErrValueTypeMismatch, key, v)
	}

	return box, nil
}

// GetScenarioValue returns the market data behind key in the representation U. A stored
// scenario value already of type U is returned as is; otherwise, and for single values,
// the key's factory builds one. Built values are cached when md supports it.
func GetScenarioValue[T any, U ScenarioValue[T]](md ScenarioMarketData, key ScenarioKey[T, U]) (u U, err error) {
	box, err := GetValue(md, key.MarketDataKey())
	if err != nil {
		return
	}

	if !box.IsSingleValue() {
		sv, e := box.ScenarioValue()
		if e != nil {
			err = e

			return
		}

		if stored, ok := sv.(U); ok {
			return stored, nil
		}
	}

	memo, ok := md.(scenarioValueMemo)
	if !ok {
		return key.CreateScenarioValue(box)
	}

	v, err := memo.memoizeScenarioValue(key.cacheKey(), func() (any, error) {
		return key.CreateScenarioValue(box)
	})
	if err != nil {
		return
	}

	u, ok = v.(U)
	if !ok {
		err = fmt.Errorf("%w: cached %s holds %T", ErrValueTypeMismatch, key, v)
	}

	return
}

// LoadTimeSeries reads the series of ids from storage. Ids without a stored series are
// left out.
func LoadTimeSeries(storage timeseries.Storage, ids ...ObservableID) (map[ObservableID]timeseries.Series, error) {
	m := make(map[ObservableID]timeseries.Series, len(ids))

	for _, id := range ids {
		series, err := storage.Load(id.StorageName())
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, err
		}

		m[id] = series
	}

	return m, nil
}

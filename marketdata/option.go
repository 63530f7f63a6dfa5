package marketdata

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libmarketdata/timeseries"
)

type Options struct {
	logger     l.Wrapper
	runID      uint64
	values     map[AnyKey]boxed
	timeSeries map[ObservableID]timeseries.Series
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		values:     make(map[AnyKey]boxed),
		timeSeries: make(map[ObservableID]timeseries.Series),
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithRunID overrides the generated run id.
func WithRunID(runID uint64) Option {
	return func(o *Options) {
		o.runID = runID
	}
}

func WithValue[T any](key Key[T], box Box[T]) Option {
	return func(o *Options) {
		o.values[key] = box
	}
}

func WithTimeSeries(id ObservableID, series timeseries.Series) Option {
	return func(o *Options) {
		o.timeSeries[id] = series
	}
}

func WithTimeSeriesMap(m map[ObservableID]timeseries.Series) Option {
	return func(o *Options) {
		for id, series := range m {
			o.timeSeries[id] = series
		}
	}
}

package marketdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSingleScenarioMarketData(t *testing.T) {
	md := newUTMarketData(t)

	for idx, want := range []float64{10, 20, 30} {
		single := NewSingleScenarioMarketData(md, idx)

		v, err := Value(single, utKey)
		assert.Nil(t, err)
		assert.EqualValues(t, want, v)

		fx, err := Value(single, FxRateKey("EUR", "USD"))
		assert.Nil(t, err)
		assert.EqualValues(t, 1.08, fx)

		date, err := single.ValuationDate()
		assert.Nil(t, err)
		assert.Equal(t, utValuationDate, date)

		assert.True(t, single.ContainsValue(utKey))
		assert.False(t, single.ContainsValue(QuoteKey("missing")))
	}
}

func TestSingleScenarioMarketDataErrors(t *testing.T) {
	md := newUTMarketData(t)

	single := NewSingleScenarioMarketData(md, 0)

	_, err := Value(single, QuoteKey("missing"))
	assert.ErrorIs(t, err, ErrValueNotFound)

	outOfRange := NewSingleScenarioMarketData(md, 3)

	_, err = Value(outOfRange, utKey)
	assert.ErrorIs(t, err, ErrScenarioIndexOutOfRange)

	_, err = Value(outOfRange, FxRateKey("EUR", "USD"))
	assert.ErrorIs(t, err, ErrScenarioIndexOutOfRange)

	_, err = outOfRange.ValuationDate()
	assert.ErrorIs(t, err, ErrScenarioIndexOutOfRange)
}

func TestSingleScenarioTimeSeries(t *testing.T) {
	md := newUTMarketData(t)

	missing := ObservableID{Source: "BBG", Name: "ESTRON"}

	for idx := 0; idx < md.ScenarioCount(); idx++ {
		single := NewSingleScenarioMarketData(md, idx)

		assert.False(t, single.ContainsTimeSeries(missing))
		assert.True(t, single.TimeSeries(missing).IsEmpty())
	}
}

func TestSingleScenarioValuationDates(t *testing.T) {
	dates := []time.Time{utValuationDate, utValuationDate.AddDate(0, 0, 1)}

	md, err := NewScenarioMarketData(2, ScenarioBox(dates...))
	assert.Nil(t, err)

	for idx, want := range dates {
		date, err := NewSingleScenarioMarketData(md, idx).ValuationDate()
		assert.Nil(t, err)
		assert.Equal(t, want, date)
	}
}

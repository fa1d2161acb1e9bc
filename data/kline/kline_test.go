package kline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/exchangesim/currency"
)

func testItem(closes ...float64) Item {
	item := Item{Asset: currency.NewCode("BTC")}
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range closes {
		c := decimal.NewFromFloat(closes[i])
		item.Candles = append(item.Candles, Candle{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: decimal.NewFromInt(1),
		})
	}
	return item
}

func TestLoad(t *testing.T) {
	t.Parallel()
	d := DataFromKline{}
	assert.ErrorIs(t, d.Load(), errNoCandleData)

	d.Item = testItem(100, 101, 102)
	require.NoError(t, d.Load())
	assert.Len(t, d.GetStream(), 3)
}

func TestNext(t *testing.T) {
	t.Parallel()
	d := DataFromKline{Item: testItem(100, 101)}
	require.NoError(t, d.Load())

	e, ok := d.Next()
	require.True(t, ok)
	assert.True(t, e.GetClosePrice().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, d.Offset())
	assert.False(t, d.IsLastEvent())

	e, ok = d.Next()
	require.True(t, ok)
	assert.True(t, e.GetClosePrice().Equal(decimal.NewFromInt(101)))
	assert.True(t, d.IsLastEvent())

	_, ok = d.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, d.Offset())
	assert.Same(t, e, d.Latest())
}

func TestStreamHelpers(t *testing.T) {
	t.Parallel()
	d := DataFromKline{Item: testItem(100, 101, 102)}
	require.NoError(t, d.Load())
	d.Next()
	d.Next()

	closes := d.StreamClose()
	require.Len(t, closes, 2)
	assert.True(t, closes[1].Equal(decimal.NewFromInt(101)))
	assert.Len(t, d.StreamOpen(), 2)
	assert.Len(t, d.StreamHigh(), 2)
	assert.Len(t, d.StreamLow(), 2)
	assert.Len(t, d.StreamVol(), 2)
	assert.Len(t, d.List(), 1)
}

func TestReset(t *testing.T) {
	t.Parallel()
	d := DataFromKline{Item: testItem(100)}
	require.NoError(t, d.Load())
	d.Next()
	d.Reset()
	assert.Zero(t, d.Offset())
	assert.Nil(t, d.Latest())
	assert.Empty(t, d.GetStream())
}

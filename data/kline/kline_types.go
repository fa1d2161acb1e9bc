package kline

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
	"github.com/thrasher-corp/exchangesim/data"
)

var errNoCandleData = errors.New("no candle data provided")

// Candle is one time-step's market snapshot for one asset. Immutable
// once loaded
type Candle struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// Item holds an ordered candle series for one asset
type Item struct {
	Asset   currency.Code
	Candles []Candle
}

// DataFromKline is a struct which implements the data.Handler interface.
// It holds an asset's candle series with helper functions
type DataFromKline struct {
	Item Item
	data.Base
}

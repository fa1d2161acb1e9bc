package data

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
)

var (
	// ErrHandlerNotFound returned when a handler is not set for a
	// configured asset
	ErrHandlerNotFound = errors.New("data handler not found")

	errNoAssets             = errors.New("no assets provided")
	errDuplicateAsset       = errors.New("duplicate asset")
	errUnknownAsset         = errors.New("asset not configured")
	errSeriesLengthMismatch = errors.New("asset series lengths do not match")
)

// Event interface used for loading and interacting with candle data
type Event interface {
	GetTime() time.Time
	GetOpenPrice() decimal.Decimal
	GetHighPrice() decimal.Decimal
	GetLowPrice() decimal.Decimal
	GetClosePrice() decimal.Decimal
	GetVolume() decimal.Decimal
}

// Handler interface for loading and streaming one asset's candle data
type Handler interface {
	Load() error
	Next() (Event, bool)
	GetStream() []Event
	History() []Event
	Latest() Event
	List() []Event
	IsLastEvent() bool
	Offset() int
	Reset()
}

// Base is the foundational implementation of a candle stream. The
// offset counts consumed events, so the latest event sits at offset-1
// in the stream
type Base struct {
	latest Event
	stream []Event
	offset int
}

// HandlerHolder keeps a data handler per configured asset and steps
// every stream in lock step so one shared cursor covers all assets
type HandlerHolder struct {
	data   map[currency.Code]Handler
	assets []currency.Code
}

package data

import (
	"fmt"

	"github.com/thrasher-corp/exchangesim/currency"
)

// Reset returns loaded data to a blank state
func (b *Base) Reset() {
	b.latest = nil
	b.offset = 0
	b.stream = nil
}

// GetStream will return the entire data list
func (b *Base) GetStream() []Event {
	return b.stream
}

// Offset returns the number of consumed events
func (b *Base) Offset() int {
	return b.offset
}

// SetStream sets the data stream for candle analysis
func (b *Base) SetStream(s []Event) {
	b.stream = s
}

// Next will return the next event in the list and also shift the offset one
func (b *Base) Next() (Event, bool) {
	if len(b.stream) <= b.offset {
		return nil, false
	}
	ret := b.stream[b.offset]
	b.offset++
	b.latest = ret
	return ret, true
}

// History will return all previous data events that have happened
func (b *Base) History() []Event {
	return b.stream[:b.offset]
}

// Latest will return the latest data event
func (b *Base) Latest() Event {
	return b.latest
}

// List returns all future data events from the current iteration
func (b *Base) List() []Event {
	return b.stream[b.offset:]
}

// IsLastEvent determines whether the latest event is the last event
func (b *Base) IsLastEvent() bool {
	return b.offset > 0 && b.offset == len(b.stream)
}

// NewHandlerHolder returns a holder for the fixed, ordered asset set
func NewHandlerHolder(assets []currency.Code) (*HandlerHolder, error) {
	if len(assets) == 0 {
		return nil, errNoAssets
	}
	h := &HandlerHolder{
		data:   make(map[currency.Code]Handler, len(assets)),
		assets: make([]currency.Code, len(assets)),
	}
	for i := range assets {
		if _, ok := h.data[assets[i]]; ok {
			return nil, fmt.Errorf("%w: %v", errDuplicateAsset, assets[i])
		}
		h.data[assets[i]] = nil
		h.assets[i] = assets[i]
	}
	return h, nil
}

// SetDataForAsset assigns a data handler to a configured asset
func (h *HandlerHolder) SetDataForAsset(a currency.Code, d Handler) error {
	if _, ok := h.data[a]; !ok {
		return fmt.Errorf("%w: %v", errUnknownAsset, a)
	}
	h.data[a] = d
	return nil
}

// Assets returns the configured assets in order
func (h *HandlerHolder) Assets() []currency.Code {
	resp := make([]currency.Code, len(h.assets))
	copy(resp, h.assets)
	return resp
}

// Load loads every stream, verifies all series share one length and
// primes each stream so the first step is current. Any misconfiguration
// is returned here rather than surfacing later as a stepping error
func (h *HandlerHolder) Load() error {
	length := -1
	for i := range h.assets {
		d := h.data[h.assets[i]]
		if d == nil {
			return fmt.Errorf("%w for %v", ErrHandlerNotFound, h.assets[i])
		}
		if err := d.Load(); err != nil {
			return fmt.Errorf("could not load %v: %w", h.assets[i], err)
		}
		streamLen := len(d.GetStream())
		if length == -1 {
			length = streamLen
		} else if streamLen != length {
			return fmt.Errorf("%w: %v has %v events, expected %v",
				errSeriesLengthMismatch, h.assets[i], streamLen, length)
		}
	}
	for i := range h.assets {
		h.data[h.assets[i]].Next()
	}
	return nil
}

// LatestCandle returns the candle at the shared cursor for an asset
func (h *HandlerHolder) LatestCandle(a currency.Code) (Event, error) {
	d, ok := h.data[a]
	if !ok || d == nil {
		return nil, fmt.Errorf("%w: %v", ErrHandlerNotFound, a)
	}
	return d.Latest(), nil
}

// LatestCandles returns a snapshot across all assets at the shared cursor
func (h *HandlerHolder) LatestCandles() (map[currency.Code]Event, error) {
	resp := make(map[currency.Code]Event, len(h.assets))
	for i := range h.assets {
		e, err := h.LatestCandle(h.assets[i])
		if err != nil {
			return nil, err
		}
		resp[h.assets[i]] = e
	}
	return resp, nil
}

// Next advances every stream one step in lock step. It returns false
// without moving any cursor when the last step is already current, so
// repeated calls at the boundary are idempotent
func (h *HandlerHolder) Next() bool {
	for i := range h.assets {
		if h.data[h.assets[i]].IsLastEvent() {
			return false
		}
	}
	for i := range h.assets {
		h.data[h.assets[i]].Next()
	}
	return true
}

// Offset returns the shared cursor, the number of consumed steps
func (h *HandlerHolder) Offset() int {
	if len(h.assets) == 0 {
		return 0
	}
	d := h.data[h.assets[0]]
	if d == nil {
		return 0
	}
	return d.Offset()
}

// Reset returns the holder to defaults
func (h *HandlerHolder) Reset() {
	for i := range h.assets {
		if h.data[h.assets[i]] != nil {
			h.data[h.assets[i]].Reset()
		}
	}
}

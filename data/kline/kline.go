package kline

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/data"
)

// GetTime returns the candle's time step
func (c *Candle) GetTime() time.Time {
	return c.Time
}

// GetOpenPrice returns the open price
func (c *Candle) GetOpenPrice() decimal.Decimal {
	return c.Open
}

// GetHighPrice returns the high price
func (c *Candle) GetHighPrice() decimal.Decimal {
	return c.High
}

// GetLowPrice returns the low price
func (c *Candle) GetLowPrice() decimal.Decimal {
	return c.Low
}

// GetClosePrice returns the close price
func (c *Candle) GetClosePrice() decimal.Decimal {
	return c.Close
}

// GetVolume returns the traded volume
func (c *Candle) GetVolume() decimal.Decimal {
	return c.Volume
}

// Load converts the loaded item into a stream ready for iteration
func (d *DataFromKline) Load() error {
	if len(d.Item.Candles) == 0 {
		return fmt.Errorf("%w for %v", errNoCandleData, d.Item.Asset)
	}

	klineData := make([]data.Event, len(d.Item.Candles))
	for i := range d.Item.Candles {
		klineData[i] = &d.Item.Candles[i]
	}
	d.SetStream(klineData)
	return nil
}

// StreamOpen returns all consumed open prices
func (d *DataFromKline) StreamOpen() []decimal.Decimal {
	h := d.History()
	ret := make([]decimal.Decimal, len(h))
	for x := range h {
		ret[x] = h[x].GetOpenPrice()
	}
	return ret
}

// StreamHigh returns all consumed high prices
func (d *DataFromKline) StreamHigh() []decimal.Decimal {
	h := d.History()
	ret := make([]decimal.Decimal, len(h))
	for x := range h {
		ret[x] = h[x].GetHighPrice()
	}
	return ret
}

// StreamLow returns all consumed low prices
func (d *DataFromKline) StreamLow() []decimal.Decimal {
	h := d.History()
	ret := make([]decimal.Decimal, len(h))
	for x := range h {
		ret[x] = h[x].GetLowPrice()
	}
	return ret
}

// StreamClose returns all consumed close prices
func (d *DataFromKline) StreamClose() []decimal.Decimal {
	h := d.History()
	ret := make([]decimal.Decimal, len(h))
	for x := range h {
		ret[x] = h[x].GetClosePrice()
	}
	return ret
}

// StreamVol returns all consumed volumes
func (d *DataFromKline) StreamVol() []decimal.Decimal {
	h := d.History()
	ret := make([]decimal.Decimal, len(h))
	for x := range h {
		ret[x] = h[x].GetVolume()
	}
	return ret
}

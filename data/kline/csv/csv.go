// Package csv loads candle series from disk, one file per asset. The
// expected layout is time,open,high,low,close,volume with an optional
// header row; timestamps may be unix seconds or RFC3339
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
	"github.com/thrasher-corp/exchangesim/data/kline"
	"github.com/thrasher-corp/exchangesim/log"
)

const columnCount = 6

var errInsufficientColumns = errors.New("insufficient columns")

// LoadCSV reads one asset's candle series from a file
func LoadCSV(file string, a currency.Code) (kline.Item, error) {
	csvFile, err := os.Open(file)
	if err != nil {
		return kline.Item{}, err
	}
	defer func() {
		if err := csvFile.Close(); err != nil {
			log.Error(err)
		}
	}()

	out := kline.Item{Asset: a}
	csvData := csv.NewReader(csvFile)
	for row := 1; ; row++ {
		record, errCSV := csvData.Read()
		if errCSV != nil {
			if errCSV == io.EOF {
				break
			}
			return kline.Item{}, errCSV
		}
		if row == 1 && isHeader(record) {
			continue
		}
		candle, errParse := parseCandle(record)
		if errParse != nil {
			return kline.Item{}, fmt.Errorf("%v row %v: %w", file, row, errParse)
		}
		out.Candles = append(out.Candles, candle)
	}
	return out, nil
}

// LoadAssets reads a candle series per asset from dir, expecting each
// series at <dir>/<lower-cased code>.csv as e.g. btc.csv
func LoadAssets(dir string, assets []currency.Code) (map[currency.Code]kline.Item, error) {
	resp := make(map[currency.Code]kline.Item, len(assets))
	for i := range assets {
		item, err := LoadCSV(filepath.Join(dir, assets[i].Lower()+".csv"), assets[i])
		if err != nil {
			return nil, err
		}
		resp[assets[i]] = item
	}
	return resp, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := parseTime(record[0])
	return err != nil
}

func parseCandle(record []string) (kline.Candle, error) {
	if len(record) < columnCount {
		return kline.Candle{}, fmt.Errorf("%w, have %v want %v",
			errInsufficientColumns, len(record), columnCount)
	}

	var c kline.Candle
	var err error
	c.Time, err = parseTime(record[0])
	if err != nil {
		return kline.Candle{}, err
	}
	c.Open, err = decimal.NewFromString(record[1])
	if err != nil {
		return kline.Candle{}, fmt.Errorf("open: %w", err)
	}
	c.High, err = decimal.NewFromString(record[2])
	if err != nil {
		return kline.Candle{}, fmt.Errorf("high: %w", err)
	}
	c.Low, err = decimal.NewFromString(record[3])
	if err != nil {
		return kline.Candle{}, fmt.Errorf("low: %w", err)
	}
	c.Close, err = decimal.NewFromString(record[4])
	if err != nil {
		return kline.Candle{}, fmt.Errorf("close: %w", err)
	}
	c.Volume, err = decimal.NewFromString(record[5])
	if err != nil {
		return kline.Candle{}, fmt.Errorf("volume: %w", err)
	}
	return c, nil
}

func parseTime(field string) (time.Time, error) {
	if unix, err := strconv.ParseInt(field, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Parse(time.RFC3339, field)
}

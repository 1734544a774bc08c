package csvsource

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/c9s/tastream/pkg/types"
)

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid unix milli time column.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the OHLC prices are not in a valid float format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid float format")

	// ErrInvalidVolumeFormat is returned when the volume column is not in a valid float format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVKLineDecoder is an extension point for CSVKLineReader to support custom file formats.
type CSVKLineDecoder func(record []string) (types.KLine, error)

// OHLCVCSVKLineDecoder decodes a binance style CSV record into a KLine:
//
//	time,open,high,low,close[,volume]
//
// The time column is validated for format sanity but discarded, indicators
// consume bars in arrival order only.
func OHLCVCSVKLineDecoder(record []string) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 5 {
		return empty, ErrNotEnoughColumns
	}

	if _, err := strconv.ParseInt(record[0], 10, 64); err != nil {
		return empty, ErrInvalidTimeFormat
	}

	prices := make([]float64, 4)
	for i, column := range record[1:5] {
		v, err := strconv.ParseFloat(column, 64)
		if err != nil {
			return empty, ErrInvalidPriceFormat
		}
		prices[i] = v
	}

	k.Open = prices[0]
	k.High = prices[1]
	k.Low = prices[2]
	k.Close = prices[3]

	if len(record) > 5 {
		volume, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			return empty, ErrInvalidVolumeFormat
		}
		k.Volume = volume
	}

	return k, nil
}

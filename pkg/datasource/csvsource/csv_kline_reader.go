// Package csvsource reads OHLCV bars from CSV files and feeds them to
// indicators through the types.KLine value.
package csvsource

import (
	"encoding/csv"
	"io"

	"github.com/c9s/tastream/pkg/types"
)

// KLineReader reads bars from a data source.
type KLineReader interface {
	Read() (types.KLine, error)
	ReadAll() ([]types.KLine, error)
}

var _ KLineReader = (*CSVKLineReader)(nil)

// CSVKLineReader is a KLineReader that reads from a CSV file.
type CSVKLineReader struct {
	csv     *csv.Reader
	decoder CSVKLineDecoder
}

// NewCSVKLineReader creates a new CSVKLineReader with the default decoder.
func NewCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	return &CSVKLineReader{
		csv:     csv,
		decoder: OHLCVCSVKLineDecoder,
	}
}

// NewCSVKLineReaderWithDecoder creates a new CSVKLineReader with the given decoder.
func NewCSVKLineReaderWithDecoder(csv *csv.Reader, decoder CSVKLineDecoder) *CSVKLineReader {
	return &CSVKLineReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next KLine from the underlying CSV data.
func (r *CSVKLineReader) Read() (types.KLine, error) {
	var k types.KLine

	rec, err := r.csv.Read()
	if err != nil {
		return k, err
	}

	return r.decoder(rec)
}

// ReadAll reads all the KLines from the underlying CSV data.
func (r *CSVKLineReader) ReadAll() ([]types.KLine, error) {
	var ks []types.KLine
	for {
		k, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		ks = append(ks, k)
	}

	return ks, nil
}

package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

// DefaultBollingerK is the usual band width multiplier.
const DefaultBollingerK = 2.0

type BandValues struct {
	UpBand   float64 `json:"upBand"`
	SMA      float64 `json:"sma"`
	DownBand float64 `json:"downBand"`
}

/*
boll implements the bollinger band indicator:

- https://www.investopedia.com/terms/b/bollingerbands.asp

The middle band is an SMA, the upper and lower bands sit K population
standard deviations away, both computed over the same window. Warm-up
behavior follows the SMA.
*/
type BOLL struct {
	Window int `json:"window"`

	// K is the band width in times of the standard deviation, generally 2
	K float64 `json:"k"`

	SMA    *SMA    `json:"sma"`
	StdDev *StdDev `json:"stdDev"`

	UpBand   floats.Slice `json:"upBand"`
	DownBand floats.Slice `json:"downBand"`
}

func NewBOLL(window int, k float64) (*BOLL, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	if k <= 0 {
		return nil, errors.Errorf("invalid band width %f: k must be a positive number", k)
	}

	sma, err := NewSMA(window)
	if err != nil {
		return nil, err
	}

	stdDev, err := NewStdDev(window)
	if err != nil {
		return nil, err
	}

	return &BOLL{
		Window: window,
		K:      k,
		SMA:    sma,
		StdDev: stdDev,
	}, nil
}

func (inc *BOLL) Update(value float64) BandValues {
	sma := inc.SMA.Update(value)
	std := inc.StdDev.Update(value)

	band := inc.K * std

	upBand := sma + band
	inc.UpBand.Push(upBand)
	inc.UpBand = inc.UpBand.Truncate(MaxSeriesLength)

	downBand := sma - band
	inc.DownBand.Push(downBand)
	inc.DownBand = inc.DownBand.Truncate(MaxSeriesLength)

	return BandValues{UpBand: upBand, SMA: sma, DownBand: downBand}
}

func (inc *BOLL) PushK(k types.ClosePricer) BandValues {
	return inc.Update(k.ClosePrice())
}

func (inc *BOLL) LastUpBand() float64 {
	return inc.UpBand.Last(0)
}

func (inc *BOLL) LastDownBand() float64 {
	return inc.DownBand.Last(0)
}

func (inc *BOLL) LastSMA() float64 {
	return inc.SMA.Last(0)
}

func (inc *BOLL) LastStdDev() float64 {
	return inc.StdDev.Last(0)
}

func (inc *BOLL) Length() int {
	return len(inc.UpBand)
}

func (inc *BOLL) Reset() {
	inc.SMA.Reset()
	inc.StdDev.Reset()
	inc.UpBand = nil
	inc.DownBand = nil
}

var _ Indicator[float64, BandValues] = (*BOLL)(nil)

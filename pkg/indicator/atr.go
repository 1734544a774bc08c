package indicator

import (
	"math"

	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

// TR computes the true range of each bar:
//
//	max(high - low, |high - previous close|, |low - previous close|)
//
// The first sample only seeds the previous close and yields 0.
type TR struct {
	Count         int          `json:"count"`
	PreviousClose float64      `json:"previousClose"`
	Values        floats.Slice `json:"values"`
}

func NewTR() *TR {
	return &TR{}
}

func (inc *TR) Update(k types.HighLowPricer) float64 {
	high, low, closing := k.HighPrice(), k.LowPrice(), k.ClosePrice()

	inc.Count++
	if inc.Count == 1 {
		inc.PreviousClose = closing
		return 0.0
	}

	trueRange := high - low
	if hc := math.Abs(high - inc.PreviousClose); trueRange < hc {
		trueRange = hc
	}
	if lc := math.Abs(low - inc.PreviousClose); trueRange < lc {
		trueRange = lc
	}

	inc.PreviousClose = closing
	inc.Values.Push(trueRange)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return trueRange
}

func (inc *TR) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *TR) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *TR) Length() int {
	return len(inc.Values)
}

func (inc *TR) Reset() {
	inc.Count = 0
	inc.PreviousClose = 0.0
	inc.Values = nil
}

/*
atr implements the Average True Range indicator:

- https://www.investopedia.com/terms/a/atr.asp

The true range stream is smoothed with Wilder's RMA.
*/
type ATR struct {
	Window int          `json:"window"`
	TR     *TR          `json:"tr"`
	RMA    *RMA         `json:"rma"`
	Values floats.Slice `json:"values"`
}

func NewATR(window int) (*ATR, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	rma, err := NewRMA(window)
	if err != nil {
		return nil, err
	}

	return &ATR{
		Window: window,
		TR:     NewTR(),
		RMA:    rma,
	}, nil
}

func (inc *ATR) Update(k types.HighLowPricer) float64 {
	trueRange := inc.TR.Update(k)
	if inc.TR.Count == 1 {
		// the first sample only seeded the previous close
		return 0.0
	}

	atr := inc.RMA.Update(trueRange)
	inc.Values.Push(atr)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return atr
}

func (inc *ATR) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *ATR) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *ATR) Length() int {
	return len(inc.Values)
}

func (inc *ATR) Reset() {
	inc.TR.Reset()
	inc.RMA.Reset()
	inc.Values = nil
}

var _ Indicator[types.HighLowPricer, float64] = (*TR)(nil)
var _ Indicator[types.HighLowPricer, float64] = (*ATR)(nil)
var _ types.Series = (*ATR)(nil)

package indicator

import (
	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

// RMA is the Running Moving Average, Wilder's smoothing: an exponential
// average with multiplier 1 / window, seeded with the first input.
//
// Refer: https://github.com/twopirllc/pandas-ta/blob/main/pandas_ta/overlap/rma.py
type RMA struct {
	Window   int          `json:"window"`
	Count    int          `json:"count"`
	Smoothed float64      `json:"smoothed"`
	Values   floats.Slice `json:"values"`
}

func NewRMA(window int) (*RMA, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	return &RMA{Window: window}, nil
}

func (inc *RMA) Update(value float64) float64 {
	lambda := 1.0 / float64(inc.Window)

	if inc.Count == 0 {
		inc.Smoothed = value
	} else {
		inc.Smoothed = inc.Smoothed*(1-lambda) + value*lambda
	}

	inc.Count++
	inc.Values.Push(inc.Smoothed)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return inc.Smoothed
}

func (inc *RMA) PushK(k types.ClosePricer) float64 {
	return inc.Update(k.ClosePrice())
}

func (inc *RMA) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *RMA) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *RMA) Length() int {
	return len(inc.Values)
}

func (inc *RMA) Reset() {
	inc.Count = 0
	inc.Smoothed = 0.0
	inc.Values = nil
}

var _ Indicator[float64, float64] = (*RMA)(nil)
var _ types.Series = (*RMA)(nil)

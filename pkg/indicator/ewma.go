package indicator

import (
	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

/*
ewma implements the Exponential Weighted Moving Average indicator:

- https://www.investopedia.com/ask/answers/122314/what-exponential-moving-average-ema-formula-and-how-ema-calculated.asp

The multiplier is 2 / (window + 1). The first sample seeds the average
directly, so there is no transient bias from a zero seed.
*/
type EWMA struct {
	Window int          `json:"window"`
	Values floats.Slice `json:"values"`
}

func NewEWMA(window int) (*EWMA, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	return &EWMA{Window: window}, nil
}

func (inc *EWMA) Update(value float64) float64 {
	multiplier := 2.0 / float64(1+inc.Window)

	if len(inc.Values) == 0 {
		inc.Values.Push(value)
		return value
	}

	ema := (1-multiplier)*inc.Last(0) + multiplier*value
	inc.Values.Push(ema)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return ema
}

func (inc *EWMA) PushK(k types.ClosePricer) float64 {
	return inc.Update(k.ClosePrice())
}

func (inc *EWMA) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *EWMA) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *EWMA) Length() int {
	return len(inc.Values)
}

func (inc *EWMA) Reset() {
	inc.Values = nil
}

var _ Indicator[float64, float64] = (*EWMA)(nil)
var _ types.Series = (*EWMA)(nil)

package indicator

import (
	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

/*
sma implements the Simple Moving Average indicator:

- https://www.investopedia.com/terms/s/sma.asp

Before the window is full, the average is computed over however many samples
have been seen (warm-up), not left undefined.
*/
type SMA struct {
	Window int          `json:"window"`
	Prices *types.Queue `json:"prices"`
	Values floats.Slice `json:"values"`
}

func NewSMA(window int) (*SMA, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	return &SMA{
		Window: window,
		Prices: types.NewQueue(window),
	}, nil
}

func (inc *SMA) Update(value float64) float64 {
	inc.Prices.Update(value)

	sma := inc.Prices.Mean()
	inc.Values.Push(sma)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return sma
}

func (inc *SMA) PushK(k types.ClosePricer) float64 {
	return inc.Update(k.ClosePrice())
}

func (inc *SMA) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *SMA) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *SMA) Length() int {
	return len(inc.Values)
}

func (inc *SMA) Reset() {
	inc.Prices.Reset()
	inc.Values = nil
}

var _ Indicator[float64, float64] = (*SMA)(nil)
var _ types.Series = (*SMA)(nil)

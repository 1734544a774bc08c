package indicator

import (
	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

// DefaultDWindow is the usual smoothing window applied to %K to obtain %D.
const DefaultDWindow = 3

type StochValues struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
}

/*
stoch implements the stochastic oscillator indicator:

- https://www.investopedia.com/terms/s/stochasticoscillator.asp

%K = 100 * (close - lowest low) / (highest high - lowest low)

A zero-range window (constant price) yields the neutral value 50 instead of a
division fault. %D is a plain SMA over the %K stream.
*/
type STOCH struct {
	Window  int `json:"window"`
	DWindow int `json:"dWindow"`

	HighValues *types.Queue `json:"highValues"`
	LowValues  *types.Queue `json:"lowValues"`

	K floats.Slice `json:"kValues"`
	D *SMA         `json:"dValues"`
}

func NewSTOCH(window, dWindow int) (*STOCH, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	d, err := NewSMA(dWindow)
	if err != nil {
		return nil, err
	}

	return &STOCH{
		Window:     window,
		DWindow:    dWindow,
		HighValues: types.NewQueue(window),
		LowValues:  types.NewQueue(window),
		D:          d,
	}, nil
}

func (inc *STOCH) Update(kline types.HighLowPricer) StochValues {
	inc.HighValues.Update(kline.HighPrice())
	inc.LowValues.Update(kline.LowPrice())

	lowest := inc.LowValues.Min()
	highest := inc.HighValues.Max()

	k := 50.0
	if highest != lowest {
		k = 100.0 * (kline.ClosePrice() - lowest) / (highest - lowest)
	}

	inc.K.Push(k)
	inc.K = inc.K.Truncate(MaxSeriesLength)

	d := inc.D.Update(k)

	return StochValues{K: k, D: d}
}

func (inc *STOCH) LastK() float64 {
	return inc.K.Last(0)
}

func (inc *STOCH) LastD() float64 {
	return inc.D.Last(0)
}

func (inc *STOCH) Length() int {
	return len(inc.K)
}

func (inc *STOCH) Reset() {
	inc.HighValues.Reset()
	inc.LowValues.Reset()
	inc.K = nil
	inc.D.Reset()
}

var _ Indicator[types.HighLowPricer, StochValues] = (*STOCH)(nil)

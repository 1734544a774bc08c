package indicator

import (
	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

// StdDev tracks the population standard deviation over a rolling window.
// During warm-up the deviation is computed over the samples seen so far,
// mirroring the SMA warm-up behavior.
type StdDev struct {
	Window int          `json:"window"`
	Prices *types.Queue `json:"prices"`
	Values floats.Slice `json:"values"`
}

func NewStdDev(window int) (*StdDev, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	return &StdDev{
		Window: window,
		Prices: types.NewQueue(window),
	}, nil
}

func (inc *StdDev) Update(value float64) float64 {
	inc.Prices.Update(value)

	std := inc.Prices.Stdev()
	inc.Values.Push(std)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return std
}

func (inc *StdDev) PushK(k types.ClosePricer) float64 {
	return inc.Update(k.ClosePrice())
}

func (inc *StdDev) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *StdDev) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *StdDev) Length() int {
	return len(inc.Values)
}

func (inc *StdDev) Reset() {
	inc.Prices.Reset()
	inc.Values = nil
}

var _ Indicator[float64, float64] = (*StdDev)(nil)
var _ types.Series = (*StdDev)(nil)

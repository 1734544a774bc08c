package indicator

import (
	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

/*
roc implements the Rate Of Change indicator:

- https://www.investopedia.com/terms/p/pricerateofchange.asp

ROC = 100 * (price - price[window ago]) / price[window ago]

During warm-up the change is measured against the oldest sample seen so far.
The very first sample, and any reference price of zero, yields 0.
*/
type ROC struct {
	Window int          `json:"window"`
	Prices *types.Queue `json:"prices"`
	Values floats.Slice `json:"values"`
}

func NewROC(window int) (*ROC, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	return &ROC{
		Window: window,
		Prices: types.NewQueue(window + 1),
	}, nil
}

func (inc *ROC) Update(value float64) float64 {
	inc.Prices.Update(value)

	var roc float64
	if prev := inc.Prices.Last(inc.Prices.Len() - 1); inc.Prices.Len() > 1 && prev != 0.0 {
		roc = 100.0 * (value - prev) / prev
	}

	inc.Values.Push(roc)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return roc
}

func (inc *ROC) PushK(k types.ClosePricer) float64 {
	return inc.Update(k.ClosePrice())
}

func (inc *ROC) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *ROC) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *ROC) Length() int {
	return len(inc.Values)
}

func (inc *ROC) Reset() {
	inc.Prices.Reset()
	inc.Values = nil
}

var _ Indicator[float64, float64] = (*ROC)(nil)
var _ types.Series = (*ROC)(nil)

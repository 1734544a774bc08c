package indicator

import (
	"math"

	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

/*
rsi implements the Relative Strength Index indicator:

- https://www.investopedia.com/terms/r/rsi.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:relative_strength_index_rsi

Average gain and average loss use Wilder's smoothing (RMA). The very first
sample has no previous close: it seeds the delta computation and yields the
neutral value 50. A zero average loss yields 100 (all gains, no losses)
instead of a division fault.
*/
type RSI struct {
	Window int `json:"window"`

	AvgGain *RMA `json:"avgGain"`
	AvgLoss *RMA `json:"avgLoss"`

	Count         int          `json:"count"`
	PreviousClose float64      `json:"previousClose"`
	Values        floats.Slice `json:"values"`
}

func NewRSI(window int) (*RSI, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	avgGain, err := NewRMA(window)
	if err != nil {
		return nil, err
	}

	avgLoss, err := NewRMA(window)
	if err != nil {
		return nil, err
	}

	return &RSI{
		Window:  window,
		AvgGain: avgGain,
		AvgLoss: avgLoss,
	}, nil
}

func (inc *RSI) Update(value float64) float64 {
	inc.Count++
	if inc.Count == 1 {
		inc.PreviousClose = value
		inc.Values.Push(50.0)
		return 50.0
	}

	delta := value - inc.PreviousClose
	inc.PreviousClose = value

	gain := math.Max(delta, 0)
	loss := -math.Min(delta, 0)

	avgGain := inc.AvgGain.Update(gain)
	avgLoss := inc.AvgLoss.Update(loss)

	rsi := 100.0
	if avgLoss > 0 {
		rs := avgGain / avgLoss
		rsi = 100.0 - (100.0 / (1.0 + rs))
	}

	inc.Values.Push(rsi)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return rsi
}

func (inc *RSI) PushK(k types.ClosePricer) float64 {
	return inc.Update(k.ClosePrice())
}

func (inc *RSI) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *RSI) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *RSI) Length() int {
	return len(inc.Values)
}

func (inc *RSI) Reset() {
	inc.AvgGain.Reset()
	inc.AvgLoss.Reset()
	inc.Count = 0
	inc.PreviousClose = 0.0
	inc.Values = nil
}

var _ Indicator[float64, float64] = (*RSI)(nil)
var _ types.Series = (*RSI)(nil)

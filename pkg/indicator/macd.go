package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

type MACDValues struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

/*
macd implements the Moving Average Convergence Divergence indicator:

- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram

The indicator owns a fast, a slow and a signal EWMA. All three update on
every call, in the order fast, slow, signal, because the signal input is the
macd value of the current call.
*/
type MACD struct {
	// ShortWindow is the short term EWMA window, usually 12
	ShortWindow int `json:"shortWindow"`
	// LongWindow is the long term EWMA window, usually 26
	LongWindow int `json:"longWindow"`
	// SignalWindow is the window of the signal line EWMA over the macd
	// stream, usually 9
	SignalWindow int `json:"signalWindow"`

	FastEWMA   *EWMA `json:"fastEWMA"`
	SlowEWMA   *EWMA `json:"slowEWMA"`
	SignalLine *EWMA `json:"signalLine"`

	Values    floats.Slice `json:"values"`
	Histogram floats.Slice `json:"histogram"`
}

func NewMACD(shortWindow, longWindow, signalWindow int) (*MACD, error) {
	fastEWMA, err := NewEWMA(shortWindow)
	if err != nil {
		return nil, err
	}

	slowEWMA, err := NewEWMA(longWindow)
	if err != nil {
		return nil, err
	}

	signalLine, err := NewEWMA(signalWindow)
	if err != nil {
		return nil, err
	}

	if shortWindow >= longWindow {
		return nil, errors.Errorf("invalid macd windows: short window %d must be strictly less than long window %d", shortWindow, longWindow)
	}

	return &MACD{
		ShortWindow:  shortWindow,
		LongWindow:   longWindow,
		SignalWindow: signalWindow,
		FastEWMA:     fastEWMA,
		SlowEWMA:     slowEWMA,
		SignalLine:   signalLine,
	}, nil
}

func (inc *MACD) Update(x float64) MACDValues {
	// update fast and slow ema
	fast := inc.FastEWMA.Update(x)
	slow := inc.SlowEWMA.Update(x)

	macd := fast - slow
	inc.Values.Push(macd)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)

	// the signal line smooths this call's macd value, not the previous one
	signal := inc.SignalLine.Update(macd)

	histogram := macd - signal
	inc.Histogram.Push(histogram)
	inc.Histogram = inc.Histogram.Truncate(MaxSeriesLength)

	return MACDValues{MACD: macd, Signal: signal, Histogram: histogram}
}

func (inc *MACD) PushK(k types.ClosePricer) MACDValues {
	return inc.Update(k.ClosePrice())
}

// Last returns the i-th most recent value of the macd line.
func (inc *MACD) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *MACD) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *MACD) Length() int {
	return len(inc.Values)
}

func (inc *MACD) Reset() {
	inc.FastEWMA.Reset()
	inc.SlowEWMA.Reset()
	inc.SignalLine.Reset()
	inc.Values = nil
	inc.Histogram = nil
}

var _ Indicator[float64, MACDValues] = (*MACD)(nil)
var _ types.Series = (*MACD)(nil)

package indicator

import (
	"math"

	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

type DMIValues struct {
	DIPlus  float64 `json:"diPlus"`
	DIMinus float64 `json:"diMinus"`
	ADX     float64 `json:"adx"`
}

/*
dmi implements the Directional Movement Index and the Average Directional
Index derived from it:

- https://www.investopedia.com/terms/d/dmi.asp
- https://github.com/twopirllc/pandas-ta/blob/main/pandas_ta/trend/adx.py

+DM and -DM are smoothed with Wilder's RMA and normalized by the ATR to get
+DI and -DI; the DX stream is smoothed again into the ADX. The first sample
only seeds the previous high/low/close. A zero ATR or a zero DI sum (flat
price) yields zero outputs instead of a division fault.
*/
type DMI struct {
	Window       int `json:"window"`
	ADXSmoothing int `json:"adxSmoothing"`

	ATR *ATR `json:"atr"`
	DMP *RMA `json:"dmp"`
	DMN *RMA `json:"dmn"`
	ADX *RMA `json:"adx"`

	Count    int     `json:"count"`
	PrevHigh float64 `json:"prevHigh"`
	PrevLow  float64 `json:"prevLow"`

	DIPlus  floats.Slice `json:"diPlus"`
	DIMinus floats.Slice `json:"diMinus"`
}

func NewDMI(window, adxSmoothing int) (*DMI, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	atr, err := NewATR(window)
	if err != nil {
		return nil, err
	}

	dmp, err := NewRMA(window)
	if err != nil {
		return nil, err
	}

	dmn, err := NewRMA(window)
	if err != nil {
		return nil, err
	}

	adx, err := NewRMA(adxSmoothing)
	if err != nil {
		return nil, err
	}

	return &DMI{
		Window:       window,
		ADXSmoothing: adxSmoothing,
		ATR:          atr,
		DMP:          dmp,
		DMN:          dmn,
		ADX:          adx,
	}, nil
}

func (inc *DMI) Update(k types.HighLowPricer) DMIValues {
	high, low := k.HighPrice(), k.LowPrice()

	inc.Count++
	if inc.Count == 1 {
		inc.ATR.Update(k)
		inc.PrevHigh = high
		inc.PrevLow = low
		return DMIValues{}
	}

	atr := inc.ATR.Update(k)

	up := high - inc.PrevHigh
	dn := inc.PrevLow - low
	inc.PrevHigh = high
	inc.PrevLow = low

	pos := 0.0
	if up > dn && up > 0 {
		pos = up
	}

	neg := 0.0
	if dn > up && dn > 0 {
		neg = dn
	}

	dmp := inc.DMP.Update(pos)
	dmn := inc.DMN.Update(neg)

	if atr == 0 {
		return DMIValues{ADX: inc.ADX.Last(0)}
	}

	diPlus := 100.0 * dmp / atr
	diMinus := 100.0 * dmn / atr
	inc.DIPlus.Push(diPlus)
	inc.DIPlus = inc.DIPlus.Truncate(MaxSeriesLength)
	inc.DIMinus.Push(diMinus)
	inc.DIMinus = inc.DIMinus.Truncate(MaxSeriesLength)

	dx := 0.0
	if sum := dmp + dmn; sum > 0 {
		dx = 100.0 * math.Abs(dmp-dmn) / sum
	}
	adx := inc.ADX.Update(dx)

	return DMIValues{DIPlus: diPlus, DIMinus: diMinus, ADX: adx}
}

func (inc *DMI) LastDIPlus() float64 {
	return inc.DIPlus.Last(0)
}

func (inc *DMI) LastDIMinus() float64 {
	return inc.DIMinus.Last(0)
}

func (inc *DMI) LastADX() float64 {
	return inc.ADX.Last(0)
}

func (inc *DMI) Length() int {
	return inc.ADX.Length()
}

func (inc *DMI) Reset() {
	inc.ATR.Reset()
	inc.DMP.Reset()
	inc.DMN.Reset()
	inc.ADX.Reset()
	inc.Count = 0
	inc.PrevHigh = 0.0
	inc.PrevLow = 0.0
	inc.DIPlus = nil
	inc.DIMinus = nil
}

var _ Indicator[types.HighLowPricer, DMIValues] = (*DMI)(nil)

package types

// KLine is a single OHLCV bar. KLines carry no timestamp: indicators consume
// them strictly in arrival order.
type KLine struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func (k KLine) OpenPrice() float64  { return k.Open }
func (k KLine) HighPrice() float64  { return k.High }
func (k KLine) LowPrice() float64   { return k.Low }
func (k KLine) ClosePrice() float64 { return k.Close }
func (k KLine) Vol() float64        { return k.Volume }

// TypicalPrice returns (high + low + close) / 3
func (k KLine) TypicalPrice() float64 {
	return (k.High + k.Low + k.Close) / 3.0
}

// ClosePricer is anything that can answer a close price. Close-price based
// indicators accept this instead of a concrete bar type.
type ClosePricer interface {
	ClosePrice() float64
}

// HighLowPricer is anything that can answer high, low and close prices.
// Range based indicators (STOCH, ATR, DMI) accept this.
type HighLowPricer interface {
	ClosePricer
	HighPrice() float64
	LowPrice() float64
}

var _ HighLowPricer = KLine{}

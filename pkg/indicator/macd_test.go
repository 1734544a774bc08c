package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MACD_AgainstComponentEWMAs(t *testing.T) {
	macd, err := NewMACD(12, 26, 9)
	assert.NoError(t, err)

	fast, err := NewEWMA(12)
	assert.NoError(t, err)
	slow, err := NewEWMA(26)
	assert.NoError(t, err)
	signal, err := NewEWMA(9)
	assert.NoError(t, err)

	price := 50.0
	for i := 0; i < 60; i++ {
		price += float64(i%9) - 4.0

		out := macd.Update(price)

		wantMACD := fast.Update(price) - slow.Update(price)
		wantSignal := signal.Update(wantMACD)

		assert.InDelta(t, wantMACD, out.MACD, Delta, "update #%d", i+1)
		assert.InDelta(t, wantSignal, out.Signal, Delta, "update #%d", i+1)

		// the histogram identity must hold exactly
		assert.Equal(t, out.MACD-out.Signal, out.Histogram, "update #%d", i+1)
	}
}

func Test_MACD_FirstSample(t *testing.T) {
	macd, err := NewMACD(12, 26, 9)
	assert.NoError(t, err)

	// both EWMAs seed with the same first price, so macd and histogram are 0
	out := macd.Update(100.0)
	assert.InDelta(t, 0.0, out.MACD, Delta)
	assert.InDelta(t, 0.0, out.Signal, Delta)
	assert.InDelta(t, 0.0, out.Histogram, Delta)
}

func Test_MACD_InvalidWindows(t *testing.T) {
	_, err := NewMACD(26, 12, 9)
	assert.Error(t, err)

	_, err = NewMACD(12, 12, 9)
	assert.Error(t, err)

	_, err = NewMACD(0, 26, 9)
	assert.Error(t, err)
}

func Test_MACD_Reset(t *testing.T) {
	macd, err := NewMACD(3, 6, 2)
	assert.NoError(t, err)

	macd.Update(10)
	macd.Update(12)

	macd.Reset()
	assert.Equal(t, 0, macd.Length())

	out := macd.Update(10)
	assert.InDelta(t, 0.0, out.MACD, Delta)
}

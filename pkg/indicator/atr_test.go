package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/tastream/pkg/types"
)

func Test_TR(t *testing.T) {
	tr := NewTR()

	// first bar only seeds the previous close
	assert.InDelta(t, 0.0, tr.Update(types.KLine{High: 12, Low: 8, Close: 10}), Delta)

	// plain high-low range
	assert.InDelta(t, 3.0, tr.Update(types.KLine{High: 12, Low: 9, Close: 11}), Delta)

	// gap up: |high - previous close| dominates
	assert.InDelta(t, 9.0, tr.Update(types.KLine{High: 20, Low: 18, Close: 19}), Delta)

	// gap down: |low - previous close| dominates
	assert.InDelta(t, 9.0, tr.Update(types.KLine{High: 11, Low: 10, Close: 10}), Delta)
}

func Test_ATR_AgainstNaiveReference(t *testing.T) {
	window := 3
	atr, err := NewATR(window)
	assert.NoError(t, err)

	klines := []types.KLine{
		{High: 10, Low: 8, Close: 9},
		{High: 11, Low: 9, Close: 10},
		{High: 14, Low: 10, Close: 13},
		{High: 13, Low: 11, Close: 12},
		{High: 16, Low: 12, Close: 15},
		{High: 15, Low: 13, Close: 14},
	}

	var reference float64
	var seeded bool
	previousClose := 0.0

	for i, k := range klines {
		got := atr.Update(k)

		if i == 0 {
			assert.InDelta(t, 0.0, got, Delta)
			previousClose = k.Close
			continue
		}

		trueRange := math.Max(k.High-k.Low,
			math.Max(math.Abs(k.High-previousClose), math.Abs(k.Low-previousClose)))
		previousClose = k.Close

		if !seeded {
			reference = trueRange
			seeded = true
		} else {
			lambda := 1.0 / float64(window)
			reference = (1-lambda)*reference + lambda*trueRange
		}

		assert.InDelta(t, reference, got, Delta, "bar #%d", i+1)
	}
}

func Test_ATR_Reset(t *testing.T) {
	atr, err := NewATR(3)
	assert.NoError(t, err)

	atr.Update(types.KLine{High: 10, Low: 8, Close: 9})
	atr.Update(types.KLine{High: 11, Low: 9, Close: 10})

	atr.Reset()
	assert.Equal(t, 0, atr.Length())
	assert.InDelta(t, 0.0, atr.Update(types.KLine{High: 10, Low: 8, Close: 9}), Delta)
}

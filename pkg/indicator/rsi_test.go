package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RSI_FirstSample(t *testing.T) {
	rsi, err := NewRSI(14)
	assert.NoError(t, err)

	assert.InDelta(t, 50.0, rsi.Update(44.34), Delta)
}

func Test_RSI_AllGains(t *testing.T) {
	rsi, err := NewRSI(3)
	assert.NoError(t, err)

	rsi.Update(1)
	for _, price := range []float64{2, 3, 4, 5} {
		assert.InDelta(t, 100.0, rsi.Update(price), Delta)
	}
}

func Test_RSI_AllLosses(t *testing.T) {
	rsi, err := NewRSI(3)
	assert.NoError(t, err)

	rsi.Update(10)
	for _, price := range []float64{9, 8, 7, 6} {
		assert.InDelta(t, 0.0, rsi.Update(price), Delta)
	}
}

func Test_RSI_Bounds(t *testing.T) {
	rsi, err := NewRSI(5)
	assert.NoError(t, err)

	// deterministic zig-zag walk
	price := 100.0
	for i := 0; i < 200; i++ {
		if i%3 == 0 {
			price += float64(i%7) + 0.5
		} else {
			price -= float64(i%5) + 0.25
		}

		got := rsi.Update(price)
		assert.GreaterOrEqual(t, got, 0.0, "update #%d", i+1)
		assert.LessOrEqual(t, got, 100.0, "update #%d", i+1)
	}
}

func Test_RSI_Reset(t *testing.T) {
	rsi, err := NewRSI(3)
	assert.NoError(t, err)

	prices := []float64{5, 6, 4, 7, 3, 8}

	var first []float64
	for _, price := range prices {
		first = append(first, rsi.Update(price))
	}

	rsi.Reset()
	assert.Equal(t, 0, rsi.Length())

	for i, price := range prices {
		assert.Equal(t, first[i], rsi.Update(price), "replay #%d", i+1)
	}
}

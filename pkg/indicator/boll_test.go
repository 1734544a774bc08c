package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BOLL_AgainstComponents(t *testing.T) {
	window := 4
	boll, err := NewBOLL(window, DefaultBollingerK)
	assert.NoError(t, err)

	prices := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	for i, price := range prices {
		out := boll.Update(price)

		lo := 0
		if i+1 > window {
			lo = i + 1 - window
		}
		win := prices[lo : i+1]

		var mean float64
		for _, v := range win {
			mean += v
		}
		mean /= float64(len(win))

		std := popStdDev(win)

		assert.InDelta(t, mean, out.SMA, Delta, "update #%d", i+1)
		assert.InDelta(t, mean+2*std, out.UpBand, Delta, "update #%d", i+1)
		assert.InDelta(t, mean-2*std, out.DownBand, Delta, "update #%d", i+1)
	}

	assert.InDelta(t, boll.LastSMA()+2*boll.LastStdDev(), boll.LastUpBand(), Delta)
	assert.InDelta(t, boll.LastSMA()-2*boll.LastStdDev(), boll.LastDownBand(), Delta)
}

func Test_BOLL_ConstantPrice(t *testing.T) {
	boll, err := NewBOLL(3, DefaultBollingerK)
	assert.NoError(t, err)

	// zero deviation collapses all three bands onto the price
	for i := 0; i < 6; i++ {
		out := boll.Update(42.0)
		assert.InDelta(t, 42.0, out.UpBand, Delta)
		assert.InDelta(t, 42.0, out.SMA, Delta)
		assert.InDelta(t, 42.0, out.DownBand, Delta)
	}
}

func Test_BOLL_InvalidBandWidth(t *testing.T) {
	_, err := NewBOLL(20, 0)
	assert.Error(t, err)

	_, err = NewBOLL(20, -1.5)
	assert.Error(t, err)
}

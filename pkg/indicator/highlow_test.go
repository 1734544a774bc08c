package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Highest(t *testing.T) {
	highest, err := NewHighest(3)
	assert.NoError(t, err)

	var input = []float64{1, 5, 2, 3, 4, 1, 1, 1}
	var want = []float64{1, 5, 5, 5, 4, 4, 4, 1}

	for i, v := range input {
		assert.InDelta(t, want[i], highest.Update(v), Delta, "update #%d", i+1)
	}
}

func Test_Lowest(t *testing.T) {
	lowest, err := NewLowest(3)
	assert.NoError(t, err)

	var input = []float64{5, 1, 4, 3, 2, 5, 5, 5}
	var want = []float64{5, 1, 1, 1, 2, 2, 2, 5}

	for i, v := range input {
		assert.InDelta(t, want[i], lowest.Update(v), Delta, "update #%d", i+1)
	}
}

func Test_HighestLowest_Reset(t *testing.T) {
	highest, err := NewHighest(2)
	assert.NoError(t, err)

	highest.Update(9)
	highest.Reset()
	assert.InDelta(t, 3.0, highest.Update(3), Delta)

	lowest, err := NewLowest(2)
	assert.NoError(t, err)

	lowest.Update(1)
	lowest.Reset()
	assert.InDelta(t, 3.0, lowest.Update(3), Delta)
}

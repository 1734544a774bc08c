package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RMA(t *testing.T) {
	rma, err := NewRMA(4)
	assert.NoError(t, err)

	// wilder's smoothing with lambda = 1/4, seeded with the first input
	assert.InDelta(t, 8.0, rma.Update(8), Delta)
	assert.InDelta(t, 8.0*0.75+12.0*0.25, rma.Update(12), Delta)

	previous := rma.Last(0)
	got := rma.Update(10)
	assert.InDelta(t, previous*0.75+10.0*0.25, got, Delta)
}

func Test_RMA_Reset(t *testing.T) {
	rma, err := NewRMA(4)
	assert.NoError(t, err)

	rma.Update(8)
	rma.Update(12)

	rma.Reset()
	assert.Equal(t, 0, rma.Length())
	assert.InDelta(t, 5.0, rma.Update(5), Delta)
}

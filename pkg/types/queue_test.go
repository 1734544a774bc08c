package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_UpdateAndEviction(t *testing.T) {
	q := NewQueue(3)

	q.Update(1)
	q.Update(2)
	assert.Equal(t, 2, q.Len())
	assert.False(t, q.Full())
	assert.InDelta(t, 1.5, q.Mean(), 1e-9)

	q.Update(3)
	assert.True(t, q.Full())
	assert.InDelta(t, 6.0, q.Sum(), 1e-9)

	// the oldest value is evicted exactly when the capacity is exceeded
	q.Update(4)
	assert.Equal(t, 3, q.Len())
	assert.InDelta(t, 9.0, q.Sum(), 1e-9)
	assert.InDelta(t, 4.0, q.Last(0), 1e-9)
	assert.InDelta(t, 2.0, q.Last(2), 1e-9)
	assert.InDelta(t, 0.0, q.Last(3), 1e-9)
}

func TestQueue_Wraparound(t *testing.T) {
	q := NewQueue(4)

	for round := 0; round < 5; round++ {
		for i := 0; i < 4; i++ {
			q.Update(float64(round*10 + i))
		}
	}

	assert.Equal(t, 4, q.Len())
	assert.InDelta(t, 43.0, q.Last(0), 1e-9)
	assert.InDelta(t, 40.0, q.Last(3), 1e-9)
	assert.InDelta(t, 43.0, q.Max(), 1e-9)
	assert.InDelta(t, 40.0, q.Min(), 1e-9)
}

func TestQueue_Variance(t *testing.T) {
	q := NewQueue(5)
	for _, v := range []float64{2, 4, 4, 4, 5} {
		q.Update(v)
	}

	// population variance of [2 4 4 4 5] is 0.96
	assert.InDelta(t, 0.96, q.Variance(), 1e-9)
}

func TestQueue_Reset(t *testing.T) {
	q := NewQueue(3)
	q.Update(1)
	q.Update(2)

	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.InDelta(t, 0.0, q.Sum(), 1e-9)

	q.Update(9)
	assert.InDelta(t, 9.0, q.Mean(), 1e-9)
}

func TestQueue_JSON(t *testing.T) {
	q := NewQueue(3)
	for _, v := range []float64{1, 2, 3, 4} {
		q.Update(v)
	}

	data, err := json.Marshal(q)
	assert.NoError(t, err)

	var restored Queue
	err = json.Unmarshal(data, &restored)
	assert.NoError(t, err)

	assert.Equal(t, q.Len(), restored.Len())
	assert.Equal(t, q.Cap(), restored.Cap())
	for i := 0; i < q.Len(); i++ {
		assert.InDelta(t, q.Last(i), restored.Last(i), 1e-9)
	}

	// the restored queue must keep evicting correctly
	restored.Update(5)
	assert.InDelta(t, 5.0, restored.Last(0), 1e-9)
	assert.InDelta(t, 3.0, restored.Last(2), 1e-9)
}

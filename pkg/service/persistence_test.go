package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/tastream/pkg/indicator"
)

func Test_MemoryService_RoundTrip(t *testing.T) {
	s := NewMemoryService()
	store := s.NewStore("test", "sub")

	var m map[string]int
	err := store.Load(&m)
	assert.ErrorIs(t, err, ErrPersistenceNotExists)

	err = store.Save(map[string]int{"a": 1})
	assert.NoError(t, err)

	err = store.Load(&m)
	assert.NoError(t, err)
	assert.Equal(t, 1, m["a"])

	err = store.Reset()
	assert.NoError(t, err)

	err = store.Load(&m)
	assert.ErrorIs(t, err, ErrPersistenceNotExists)
}

func Test_JsonService_RoundTrip(t *testing.T) {
	s := &JsonPersistenceService{Directory: t.TempDir()}
	store := s.NewStore("state", "BTCUSDT")

	var m map[string]int
	err := store.Load(&m)
	assert.ErrorIs(t, err, ErrPersistenceNotExists)

	err = store.Save(map[string]int{"a": 1})
	assert.NoError(t, err)

	err = store.Load(&m)
	assert.NoError(t, err)
	assert.Equal(t, 1, m["a"])

	err = store.Reset()
	assert.NoError(t, err)

	err = store.Load(&m)
	assert.ErrorIs(t, err, ErrPersistenceNotExists)
}

func Test_SnapshotResume(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	reference, err := indicator.NewSMA(3)
	assert.NoError(t, err)
	for _, price := range prices {
		reference.Update(price)
	}

	// run the first half, snapshot, then resume into a fresh instance
	first, err := indicator.NewSMA(3)
	assert.NoError(t, err)
	for _, price := range prices[:4] {
		first.Update(price)
	}

	s := NewMemoryService()
	store := s.NewStore("sma")
	assert.NoError(t, store.Save(first))

	resumed, err := indicator.NewSMA(3)
	assert.NoError(t, err)
	assert.NoError(t, store.Load(resumed))

	for i, price := range prices[4:] {
		got := resumed.Update(price)
		assert.InDelta(t, reference.Last(len(prices[4:])-1-i), got, 1e-9, "update #%d", i+1)
	}
}

package types

import (
	"encoding/json"
	"math"
)

// Queue is a fixed-capacity ring buffer of float64 values with a running sum.
// The backing array is preallocated once, so the per-sample hot path never
// reallocates. When the queue is full, Update evicts the oldest value.
//
// The zero Queue is not usable, construct it with NewQueue.
type Queue struct {
	arr   []float64
	head  int
	count int
	sum   float64
}

// NewQueue allocates a queue with the given capacity. The capacity must be a
// positive integer; callers are expected to validate it beforehand.
func NewQueue(size int) *Queue {
	return &Queue{
		arr: make([]float64, size),
	}
}

// Update appends v, evicting the oldest value when the queue is full.
func (q *Queue) Update(v float64) {
	if q.count >= len(q.arr) {
		q.sum -= q.arr[q.head]
	} else {
		q.count++
	}

	q.arr[q.head] = v
	q.sum += v
	q.head = (q.head + 1) % len(q.arr)
}

func (q *Queue) Len() int {
	return q.count
}

func (q *Queue) Cap() int {
	return len(q.arr)
}

func (q *Queue) Full() bool {
	return q.count == len(q.arr)
}

func (q *Queue) Sum() float64 {
	return q.sum
}

// Mean returns the arithmetic mean over the values currently held, which is
// fewer than the capacity while the queue is still warming up.
func (q *Queue) Mean() float64 {
	if q.count == 0 {
		return 0.0
	}
	return q.sum / float64(q.count)
}

func (q *Queue) Max() float64 {
	m := -math.MaxFloat64
	for i := 0; i < q.count; i++ {
		m = math.Max(m, q.Last(i))
	}
	return m
}

func (q *Queue) Min() float64 {
	m := math.MaxFloat64
	for i := 0; i < q.count; i++ {
		m = math.Min(m, q.Last(i))
	}
	return m
}

// Variance returns the population variance over the values currently held.
// Computed in two passes against the actual buffer contents, so it does not
// accumulate drift from the running sum.
func (q *Queue) Variance() float64 {
	if q.count == 0 {
		return 0.0
	}

	mean := q.Mean()
	var sq float64
	for i := 0; i < q.count; i++ {
		d := q.Last(i) - mean
		sq += d * d
	}
	return sq / float64(q.count)
}

func (q *Queue) Stdev() float64 {
	return math.Sqrt(q.Variance())
}

// Last returns the i-th value counting backwards from the newest one.
func (q *Queue) Last(i int) float64 {
	if i < 0 || i >= q.count {
		return 0.0
	}

	n := len(q.arr)
	return q.arr[((q.head-1-i)%n+n)%n]
}

func (q *Queue) Index(i int) float64 {
	return q.Last(i)
}

func (q *Queue) Length() int {
	return q.count
}

// Reset drops all values but keeps the capacity.
func (q *Queue) Reset() {
	q.head = 0
	q.count = 0
	q.sum = 0.0
	for i := range q.arr {
		q.arr[i] = 0.0
	}
}

var _ Series = (*Queue)(nil)

type queueRecord struct {
	Capacity int       `json:"capacity"`
	Values   []float64 `json:"values"`
}

func (q *Queue) MarshalJSON() ([]byte, error) {
	values := make([]float64, 0, q.count)
	for i := q.count - 1; i >= 0; i-- {
		values = append(values, q.Last(i))
	}

	return json.Marshal(queueRecord{
		Capacity: len(q.arr),
		Values:   values,
	})
}

func (q *Queue) UnmarshalJSON(data []byte) error {
	var record queueRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	*q = *NewQueue(record.Capacity)
	for _, v := range record.Values {
		q.Update(v)
	}
	return nil
}

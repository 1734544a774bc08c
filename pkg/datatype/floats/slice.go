package floats

import "math"

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Max() float64 {
	m := -math.MaxFloat64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.MaxFloat64
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	length := len(s)
	if length == 0 {
		return 0.0
	}
	return s.Sum() / float64(length)
}

// Tail returns a copy of the last size elements.
func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

// Diff returns the per-element difference to the previous element. The first
// element of the result is always zero.
func (s Slice) Diff() (values Slice) {
	for i, v := range s {
		if i == 0 {
			values.Push(0)
			continue
		}
		values.Push(v - s[i-1])
	}
	return values
}

// Truncate keeps the last size elements, returning the slice unchanged when it
// is already short enough.
func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}

	return s[len(s)-size:]
}

// Last returns the i-th element counting backwards from the newest one.
// Out of range access returns zero.
func (s Slice) Last(i int) float64 {
	length := len(s)
	if i < 0 || length-1-i < 0 {
		return 0.0
	}
	return s[length-1-i]
}

// Index is an alias of Last.
func (s Slice) Index(i int) float64 {
	return s.Last(i)
}

func (s Slice) Length() int {
	return len(s)
}

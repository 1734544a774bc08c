package indicator

import (
	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

// Highest tracks the highest value over a rolling window.
type Highest struct {
	Window    int          `json:"window"`
	RawValues *types.Queue `json:"rawValues"`
	Values    floats.Slice `json:"values"`
}

func NewHighest(window int) (*Highest, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	return &Highest{
		Window:    window,
		RawValues: types.NewQueue(window),
	}, nil
}

func (inc *Highest) Update(value float64) float64 {
	inc.RawValues.Update(value)

	highest := inc.RawValues.Max()
	inc.Values.Push(highest)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return highest
}

func (inc *Highest) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *Highest) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *Highest) Length() int {
	return len(inc.Values)
}

func (inc *Highest) Reset() {
	inc.RawValues.Reset()
	inc.Values = nil
}

// Lowest tracks the lowest value over a rolling window.
type Lowest struct {
	Window    int          `json:"window"`
	RawValues *types.Queue `json:"rawValues"`
	Values    floats.Slice `json:"values"`
}

func NewLowest(window int) (*Lowest, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	return &Lowest{
		Window:    window,
		RawValues: types.NewQueue(window),
	}, nil
}

func (inc *Lowest) Update(value float64) float64 {
	inc.RawValues.Update(value)

	lowest := inc.RawValues.Min()
	inc.Values.Push(lowest)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return lowest
}

func (inc *Lowest) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *Lowest) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *Lowest) Length() int {
	return len(inc.Values)
}

func (inc *Lowest) Reset() {
	inc.RawValues.Reset()
	inc.Values = nil
}

var _ Indicator[float64, float64] = (*Highest)(nil)
var _ Indicator[float64, float64] = (*Lowest)(nil)

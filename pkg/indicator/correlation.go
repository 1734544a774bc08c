package indicator

import (
	"math"

	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/types"
)

/*
correlation implements the rolling Pearson correlation coefficient between
two input streams over a fixed window.

- https://www.investopedia.com/terms/c/correlationcoefficient.asp

Fewer than two sample pairs, or a degenerate window (either stream constant),
yields 0 instead of a division fault.
*/
type Correlation struct {
	Window int `json:"window"`

	X *types.Queue `json:"x"`
	Y *types.Queue `json:"y"`

	// SumXY is the running sum of x*y over the window
	SumXY  float64      `json:"sumXY"`
	Values floats.Slice `json:"values"`
}

func NewCorrelation(window int) (*Correlation, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	return &Correlation{
		Window: window,
		X:      types.NewQueue(window),
		Y:      types.NewQueue(window),
	}, nil
}

func (inc *Correlation) Update(x, y float64) float64 {
	if inc.X.Full() {
		tx := inc.X.Last(inc.X.Len() - 1)
		ty := inc.Y.Last(inc.Y.Len() - 1)
		inc.SumXY -= tx * ty
	}

	inc.X.Update(x)
	inc.Y.Update(y)
	inc.SumXY += x * y

	corr := inc.calculate()
	inc.Values.Push(corr)
	inc.Values = inc.Values.Truncate(MaxSeriesLength)
	return corr
}

func (inc *Correlation) calculate() float64 {
	n := float64(inc.X.Len())
	if n < 2 {
		return 0.0
	}

	numerator := inc.SumXY - inc.X.Sum()*inc.Y.Sum()/n

	// population variance times n gives sum((x - mean)^2)
	denominator := n * inc.X.Variance() * n * inc.Y.Variance()
	if denominator <= 0 {
		return 0.0
	}

	return numerator / math.Sqrt(denominator)
}

func (inc *Correlation) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *Correlation) Index(i int) float64 {
	return inc.Last(i)
}

func (inc *Correlation) Length() int {
	return len(inc.Values)
}

func (inc *Correlation) Reset() {
	inc.X.Reset()
	inc.Y.Reset()
	inc.SumXY = 0.0
	inc.Values = nil
}

var _ types.Series = (*Correlation)(nil)

package types

// Series is the read-only view of a float64 series. Last(0) is the most
// recent value; out of range access returns zero.
type Series interface {
	Last(i int) float64
	Index(i int) float64
	Length() int
}

// Package indicator provides incremental technical-analysis indicators.
//
// Every indicator consumes one sample per Update call, in arrival order,
// keeping only the minimal rolling state needed for the next output. The
// output after N updates matches what a from-scratch batch computation over
// the same samples would produce, within floating point tolerance.
//
// Indicators are not safe for concurrent mutation; use one instance per
// stream.
package indicator

import (
	"github.com/pkg/errors"
)

// Indicator is the contract shared by every indicator in this package:
// ingest the next sample S, mutate rolling state, and return the newly
// computed output O. O is float64 for single-value indicators and a small
// struct for indicators with multiple outputs (MACD, BOLL, STOCH, DMI).
type Indicator[S, O any] interface {
	// Update consumes one sample in arrival order and returns the new output.
	Update(sample S) O

	// Reset restores the just-constructed state without touching the
	// configuration, as if no sample had ever been ingested.
	Reset()
}

// MaxWindow is the maximum window size accepted at construction time.
const MaxWindow = 100_000

// MaxSeriesLength caps the output history an indicator retains. The series is
// truncated from the front once it grows past this length; rolling window
// state is unaffected.
const MaxSeriesLength = 5_000

func validateWindow(window int) error {
	if window <= 0 {
		return errors.Errorf("invalid window %d: window must be a positive integer", window)
	}

	if window > MaxWindow {
		return errors.Errorf("invalid window %d: window must not exceed %d", window, MaxWindow)
	}

	return nil
}

// Package series provides the time-indexed numeric substrate for the
// indicator engine: an immutable price series, a column frame keyed by the
// series timestamps, sparse event sequences, and the rolling-window and
// exponential-smoothing primitives the indicator variants compose.
//
// Missing values are IEEE NaN throughout. Any comparison involving NaN is
// false, so rows inside a warm-up prefix (or produced by a division by
// zero) can never satisfy a crossing predicate.
package series

import (
	"math"
	"time"

	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Series is an ordered, time-indexed sequence of float64 values with
// strictly increasing timestamps. It is immutable after construction.
type Series struct {
	name   string
	times  []time.Time
	values []float64
}

// New creates a Series from parallel time and value slices. The slices are
// copied. Timestamps must be strictly increasing (which also rules out
// duplicates), and both slices must be non-empty and of equal length.
func New(name string, times []time.Time, values []float64) (*Series, error) {
	if len(times) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySeries, "series requires at least one observation")
	}

	if len(times) != len(values) {
		return nil, errors.Newf(errors.ErrCodeLengthMismatch, "series has %d timestamps but %d values", len(times), len(values))
	}

	for i := 1; i < len(times); i++ {
		if times[i].Equal(times[i-1]) {
			return nil, errors.Newf(errors.ErrCodeDuplicateTimestamp, "duplicate timestamp %s at position %d", times[i], i)
		}

		if times[i].Before(times[i-1]) {
			return nil, errors.Newf(errors.ErrCodeUnorderedTimestamps, "timestamp %s at position %d is before its predecessor", times[i], i)
		}
	}

	s := &Series{
		name:   name,
		times:  make([]time.Time, len(times)),
		values: make([]float64, len(values)),
	}
	copy(s.times, times)
	copy(s.values, values)

	return s, nil
}

// Name returns the series name.
func (s *Series) Name() string {
	return s.name
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.times)
}

// Time returns the timestamp at position i.
func (s *Series) Time(i int) time.Time {
	return s.times[i]
}

// Value returns the value at position i.
func (s *Series) Value(i int) float64 {
	return s.values[i]
}

// Times returns a copy of the timestamps.
func (s *Series) Times() []time.Time {
	out := make([]time.Time, len(s.times))
	copy(out, s.times)

	return out
}

// Values returns a copy of the values.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// NaN returns a slice of n NaN values. Derived columns start from this
// before their warmed-up region is filled in.
func NaN(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}

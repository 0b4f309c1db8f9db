package series

import "time"

// Sparse is a sparse time-indexed sequence: a subset of a frame's
// timestamps with one value per entry. Crossing detectors produce their
// events as Sparse sequences in scan order, so entries are always sorted
// by time.
type Sparse struct {
	times  []time.Time
	values []float64
}

// Append adds an event. Callers append in scan order.
func (sp *Sparse) Append(t time.Time, value float64) {
	sp.times = append(sp.times, t)
	sp.values = append(sp.values, value)
}

// Len returns the number of entries.
func (sp Sparse) Len() int {
	return len(sp.times)
}

// Time returns the timestamp of entry i.
func (sp Sparse) Time(i int) time.Time {
	return sp.times[i]
}

// Value returns the value recorded at entry i.
func (sp Sparse) Value(i int) float64 {
	return sp.values[i]
}

// Contains reports whether t is one of the entry timestamps.
func (sp Sparse) Contains(t time.Time) bool {
	for _, st := range sp.times {
		if st.Equal(t) {
			return true
		}
	}

	return false
}

// After returns the entries at or after t.
func (sp Sparse) After(t time.Time) Sparse {
	var out Sparse

	for i, st := range sp.times {
		if !st.Before(t) {
			out.Append(st, sp.values[i])
		}
	}

	return out
}

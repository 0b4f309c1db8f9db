package series

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// ColumnPrice is the name of the input price column every frame carries.
const ColumnPrice = "price"

// Frame is a time-indexed table of named float64 columns sharing the
// timestamps of the price series it was built from, plus an optional side
// column. A frame is owned by the indicator instance that produced it and
// is read-only to consumers: all accessors return copies.
type Frame struct {
	times []time.Time
	order []string
	cols  map[string][]float64
	side  []optional.Option[types.Side]
}

// NewFrame creates a frame over the timestamps of prices, with the price
// values as its first column.
func NewFrame(prices *Series) *Frame {
	f := &Frame{
		times: prices.Times(),
		order: []string{ColumnPrice},
		cols:  map[string][]float64{ColumnPrice: prices.Values()},
		side:  nil,
	}

	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.times)
}

// Time returns the timestamp of row i.
func (f *Frame) Time(i int) time.Time {
	return f.times[i]
}

// Times returns a copy of the row timestamps.
func (f *Frame) Times() []time.Time {
	out := make([]time.Time, len(f.times))
	copy(out, f.times)

	return out
}

// Columns returns the column names in insertion order. The side column is
// not part of this list.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)

	return out
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) ([]float64, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeColumnNotFound, "column %q not found", name)
	}

	out := make([]float64, len(col))
	copy(out, col)

	return out, nil
}

// AddColumn appends a derived column. The column must be new and aligned
// with the frame's timestamps.
func (f *Frame) AddColumn(name string, values []float64) error {
	if _, exists := f.cols[name]; exists {
		return errors.Newf(errors.ErrCodeColumnAlreadyExists, "column %q already exists", name)
	}

	if len(values) != len(f.times) {
		return errors.Newf(errors.ErrCodeLengthMismatch, "column %q has %d values for %d rows", name, len(values), len(f.times))
	}

	col := make([]float64, len(values))
	copy(col, values)

	f.cols[name] = col
	f.order = append(f.order, name)

	return nil
}

// SetSide stores the side column. None marks rows where no crossing event
// has occurred yet.
func (f *Frame) SetSide(side []optional.Option[types.Side]) error {
	if len(side) != len(f.times) {
		return errors.Newf(errors.ErrCodeLengthMismatch, "side column has %d values for %d rows", len(side), len(f.times))
	}

	f.side = make([]optional.Option[types.Side], len(side))
	copy(f.side, side)

	return nil
}

// HasSide reports whether a side column has been assigned.
func (f *Frame) HasSide() bool {
	return f.side != nil
}

// Side returns a copy of the side column, or nil if none was assigned.
func (f *Frame) Side() []optional.Option[types.Side] {
	if f.side == nil {
		return nil
	}

	out := make([]optional.Option[types.Side], len(f.side))
	copy(out, f.side)

	return out
}

// SideAt returns the side of row i, or None if the side column is absent
// or no event had occurred by row i.
func (f *Frame) SideAt(i int) optional.Option[types.Side] {
	if f.side == nil {
		return optional.None[types.Side]()
	}

	return f.side[i]
}

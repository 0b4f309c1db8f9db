// Package indicator implements technical indicators over a price series and
// the shared crossover protocol that turns them into directional side
// signals.
//
// Each variant computes its derived columns eagerly at construction into a
// series.Frame and supplies two crossing predicates. The shared protocol
// merges the resulting up/down events and forward-fills them into a side
// column. Variants are immutable after construction; Frame() always returns
// the same computed table.
package indicator

import (
	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Indicator is the narrow capability tier: a named, eagerly computed frame.
// CCI implements only this tier.
type Indicator interface {
	// Name returns the indicator variant identifier.
	Name() types.IndicatorType
	// Frame returns the computed table. It is idempotent: repeated calls
	// return the same frame with no recomputation.
	Frame() *series.Frame
}

// CrossDetector supplies the two crossing predicates the side-assignment
// protocol needs. Up and down predicates of a variant must be mutually
// exclusive on any single bar; a variant violating that breaks the
// contract and side assignment fails with ErrCodeCrossConflict.
type CrossDetector interface {
	// UpCross returns the sparse sequence of upward crossing events.
	UpCross(f *series.Frame) (series.Sparse, error)
	// DownCross returns the sparse sequence of downward crossing events.
	DownCross(f *series.Frame) (series.Sparse, error)
}

// SignalGenerator is the full capability tier: an indicator whose frame
// carries a side column and which exposes its crossing events.
type SignalGenerator interface {
	Indicator
	CrossDetector

	// SwitchUp returns the upward crossing events found at construction.
	SwitchUp() series.Sparse
	// SwitchDown returns the downward crossing events found at construction.
	SwitchDown() series.Sparse
}

// UnimplementedCrossDetector is an embeddable default whose predicates fail
// loudly. A custom variant that embeds it without overriding both methods
// surfaces a configuration error instead of silently producing no events.
type UnimplementedCrossDetector struct{}

// UpCross always fails: the embedding type must override it.
func (UnimplementedCrossDetector) UpCross(_ *series.Frame) (series.Sparse, error) {
	return series.Sparse{}, errors.New(errors.ErrCodeCrossDetectionNotImplemented, "up-cross detection not implemented in base type")
}

// DownCross always fails: the embedding type must override it.
func (UnimplementedCrossDetector) DownCross(_ *series.Frame) (series.Sparse, error) {
	return series.Sparse{}, errors.New(errors.ErrCodeCrossDetectionNotImplemented, "down-cross detection not implemented in base type")
}

// AsSignalGenerator asserts that ind belongs to the signal-producing tier.
// Metric-only indicators such as CCI fail with
// ErrCodeSignalGenerationNotSupported.
func AsSignalGenerator(ind Indicator) (SignalGenerator, error) {
	sg, ok := ind.(SignalGenerator)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeSignalGenerationNotSupported, "indicator %s does not generate signals", ind.Name())
	}

	return sg, nil
}

package indicator

import (
	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Default smoothing spans for the EMA crossover pair.
const (
	DefaultEMAFastSpan = 3
	DefaultEMASlowSpan = 7
)

var _ SignalGenerator = (*EMACross)(nil)

// EMACross tracks a fast and a slow exponentially weighted moving average
// of the price and signals on their crossovers. The span parameters control
// the decay rate (alpha = 2/(span+1)), not a fixed lookback count.
type EMACross struct {
	fastSpan   int
	slowSpan   int
	frame      *series.Frame
	switchUp   series.Sparse
	switchDown series.Sparse
}

// NewEMACross builds the indicator over prices with the given spans.
func NewEMACross(prices *series.Series, fastSpan, slowSpan int) (*EMACross, error) {
	if prices == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "price series is required")
	}

	if fastSpan <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidSpan, "fast span must be a positive integer, got %d", fastSpan)
	}

	if slowSpan <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidSpan, "slow span must be a positive integer, got %d", slowSpan)
	}

	closes := prices.Values()

	f := series.NewFrame(prices)
	if err := f.AddColumn("fast", series.EWMMean(closes, float64(fastSpan))); err != nil {
		return nil, err
	}

	if err := f.AddColumn("slow", series.EWMMean(closes, float64(slowSpan))); err != nil {
		return nil, err
	}

	e := &EMACross{fastSpan: fastSpan, slowSpan: slowSpan}

	up, down, err := assignSide(f, e)
	if err != nil {
		return nil, err
	}

	e.frame = f
	e.switchUp = up
	e.switchDown = down

	return e, nil
}

// Name returns the indicator variant identifier.
func (e *EMACross) Name() types.IndicatorType {
	return types.IndicatorTypeEMACross
}

// Frame returns the computed table.
func (e *EMACross) Frame() *series.Frame {
	return e.frame
}

// SwitchUp returns the upward crossing events.
func (e *EMACross) SwitchUp() series.Sparse {
	return e.switchUp
}

// SwitchDown returns the downward crossing events.
func (e *EMACross) SwitchDown() series.Sparse {
	return e.switchDown
}

// UpCross fires when the fast line crosses from below to above the slow
// line. The recorded value is the fast line at the event.
func (e *EMACross) UpCross(f *series.Frame) (series.Sparse, error) {
	return e.cross(f, func(prevFast, prevSlow, fast, slow float64) bool {
		return prevFast < prevSlow && fast > slow
	})
}

// DownCross fires on the reverse crossover.
func (e *EMACross) DownCross(f *series.Frame) (series.Sparse, error) {
	return e.cross(f, func(prevFast, prevSlow, fast, slow float64) bool {
		return prevFast > prevSlow && fast < slow
	})
}

func (e *EMACross) cross(f *series.Frame, fires func(prevFast, prevSlow, fast, slow float64) bool) (series.Sparse, error) {
	fast, err := f.Column("fast")
	if err != nil {
		return series.Sparse{}, err
	}

	slow, err := f.Column("slow")
	if err != nil {
		return series.Sparse{}, err
	}

	var out series.Sparse

	for i := 1; i < f.Len(); i++ {
		if fires(fast[i-1], slow[i-1], fast[i], slow[i]) {
			out.Append(f.Time(i), fast[i])
		}
	}

	return out, nil
}

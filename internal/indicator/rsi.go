package indicator

import (
	"math"

	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// DefaultRSIWindow is the standard RSI smoothing span.
const DefaultRSIWindow = 14

const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

var _ SignalGenerator = (*RSI)(nil)

// RSI computes the Relative Strength Index with exponentially weighted
// average gain and loss (span = window). Rows where RSI sits strictly
// inside the 30-70 band are forced to a neutral side after the forward
// fill.
type RSI struct {
	window     int
	frame      *series.Frame
	switchUp   series.Sparse
	switchDown series.Sparse
}

// NewRSI builds the indicator over prices. A flat or strictly rising
// series keeps the average loss at zero; the resulting RSI is 100 (or NaN
// on the first bar, where the change itself is undefined).
func NewRSI(prices *series.Series, window int) (*RSI, error) {
	if prices == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "price series is required")
	}

	if window <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window must be a positive integer, got %d", window)
	}

	closes := prices.Values()
	change := series.Diff(closes)

	gain := series.NaN(len(closes))
	loss := series.NaN(len(closes))

	for i, c := range change {
		if math.IsNaN(c) {
			continue
		}

		gain[i] = 0
		loss[i] = 0

		if c > 0 {
			gain[i] = c
		} else if c < 0 {
			loss[i] = -c
		}
	}

	avgGain := series.EWMMean(gain, float64(window))
	avgLoss := series.EWMMean(loss, float64(window))

	rsi := series.NaN(len(closes))
	for i := range closes {
		rs := avgGain[i] / avgLoss[i]
		rsi[i] = 100 - 100/(1+rs)
	}

	f := series.NewFrame(prices)
	if err := f.AddColumn("RSI", rsi); err != nil {
		return nil, err
	}

	r := &RSI{window: window}

	up, down, err := assignSide(f, r)
	if err != nil {
		return nil, err
	}

	if err := overrideNeutral(f, func(i int) bool {
		return rsi[i] > rsiOversold && rsi[i] < rsiOverbought
	}); err != nil {
		return nil, err
	}

	r.frame = f
	r.switchUp = up
	r.switchDown = down

	return r, nil
}

// Name returns the indicator variant identifier.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Frame returns the computed table.
func (r *RSI) Frame() *series.Frame {
	return r.frame
}

// SwitchUp returns the upward crossing events.
func (r *RSI) SwitchUp() series.Sparse {
	return r.switchUp
}

// SwitchDown returns the downward crossing events.
func (r *RSI) SwitchDown() series.Sparse {
	return r.switchDown
}

// UpCross fires when RSI falls below the oversold line from above.
func (r *RSI) UpCross(f *series.Frame) (series.Sparse, error) {
	return r.cross(f, func(prev, cur float64) bool {
		return prev > rsiOversold && cur < rsiOversold
	})
}

// DownCross fires when RSI rises above the overbought line from below.
func (r *RSI) DownCross(f *series.Frame) (series.Sparse, error) {
	return r.cross(f, func(prev, cur float64) bool {
		return prev < rsiOverbought && cur > rsiOverbought
	})
}

func (r *RSI) cross(f *series.Frame, fires func(prev, cur float64) bool) (series.Sparse, error) {
	rsi, err := f.Column("RSI")
	if err != nil {
		return series.Sparse{}, err
	}

	price, err := f.Column(series.ColumnPrice)
	if err != nil {
		return series.Sparse{}, err
	}

	var out series.Sparse

	for i := 1; i < f.Len(); i++ {
		if fires(rsi[i-1], rsi[i]) {
			out.Append(f.Time(i), price[i])
		}
	}

	return out, nil
}

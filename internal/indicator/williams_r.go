package indicator

import (
	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// DefaultWilliamsRWindow is the standard Williams %R lookback.
const DefaultWilliamsRWindow = 14

const (
	williamsROversold   = 20.0
	williamsROverbought = 80.0
)

var _ SignalGenerator = (*WilliamsR)(nil)

// WilliamsR computes Williams %R over a rolling window and signals when
// the oscillator leaves the overbought or oversold zone.
type WilliamsR struct {
	window     int
	frame      *series.Frame
	switchUp   series.Sparse
	switchDown series.Sparse
}

// NewWilliamsR builds the indicator over prices. The wr column is
// 100*(high-price)/(high-low) with high/low the rolling window extremes; a
// window with zero range yields NaN and can never fire a crossing.
func NewWilliamsR(prices *series.Series, window int) (*WilliamsR, error) {
	if prices == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "price series is required")
	}

	if window <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window must be a positive integer, got %d", window)
	}

	closes := prices.Values()
	high := series.RollingMax(closes, window)
	low := series.RollingMin(closes, window)

	wr := series.NaN(len(closes))
	for i := range closes {
		wr[i] = 100 * (high[i] - closes[i]) / (high[i] - low[i])
	}

	f := series.NewFrame(prices)
	if err := f.AddColumn("wr", wr); err != nil {
		return nil, err
	}

	w := &WilliamsR{window: window}

	up, down, err := assignSide(f, w)
	if err != nil {
		return nil, err
	}

	w.frame = f
	w.switchUp = up
	w.switchDown = down

	return w, nil
}

// Name returns the indicator variant identifier.
func (w *WilliamsR) Name() types.IndicatorType {
	return types.IndicatorTypeWilliamsR
}

// Frame returns the computed table.
func (w *WilliamsR) Frame() *series.Frame {
	return w.frame
}

// SwitchUp returns the upward crossing events.
func (w *WilliamsR) SwitchUp() series.Sparse {
	return w.switchUp
}

// SwitchDown returns the downward crossing events.
func (w *WilliamsR) SwitchDown() series.Sparse {
	return w.switchDown
}

// UpCross fires when wr drops below the oversold line from above.
func (w *WilliamsR) UpCross(f *series.Frame) (series.Sparse, error) {
	wr, err := f.Column("wr")
	if err != nil {
		return series.Sparse{}, err
	}

	price, err := f.Column(series.ColumnPrice)
	if err != nil {
		return series.Sparse{}, err
	}

	var out series.Sparse

	for i := 1; i < f.Len(); i++ {
		if wr[i-1] > williamsROversold && wr[i] < williamsROversold {
			out.Append(f.Time(i), price[i])
		}
	}

	return out, nil
}

// DownCross fires when wr rises above the overbought line from below.
func (w *WilliamsR) DownCross(f *series.Frame) (series.Sparse, error) {
	wr, err := f.Column("wr")
	if err != nil {
		return series.Sparse{}, err
	}

	price, err := f.Column(series.ColumnPrice)
	if err != nil {
		return series.Sparse{}, err
	}

	var out series.Sparse

	for i := 1; i < f.Len(); i++ {
		if wr[i-1] < williamsROverbought && wr[i] > williamsROverbought {
			out.Append(f.Time(i), price[i])
		}
	}

	return out, nil
}

package indicator

import (
	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Default Bollinger Band parameters.
const (
	DefaultBollingerWindow = 20
	DefaultBollingerNumSD  = 2.0
)

var _ SignalGenerator = (*BollingerBands)(nil)

// BollingerBands computes a rolling mean band with upper and lower
// envelopes numsd population standard deviations away, and signals
// mean-reversion crossings of the envelopes.
type BollingerBands struct {
	window     int
	numSD      float64
	frame      *series.Frame
	switchUp   series.Sparse
	switchDown series.Sparse
}

// NewBollingerBands builds the indicator over prices. The standard
// deviation uses divisor = window (population), not window-1.
func NewBollingerBands(prices *series.Series, window int, numSD float64) (*BollingerBands, error) {
	if prices == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "price series is required")
	}

	if window <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window must be a positive integer, got %d", window)
	}

	if numSD <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidStdDev, "numsd must be a positive number, got %f", numSD)
	}

	closes := prices.Values()
	avg := series.RollingMean(closes, window)
	sd := series.RollingStd(closes, window)

	upper := series.NaN(len(closes))
	lower := series.NaN(len(closes))

	for i := range closes {
		upper[i] = avg[i] + numSD*sd[i]
		lower[i] = avg[i] - numSD*sd[i]
	}

	f := series.NewFrame(prices)

	for _, col := range []struct {
		name   string
		values []float64
	}{
		{"average", avg},
		{"upper_band", upper},
		{"lower_band", lower},
		{"standard_deviation", sd},
	} {
		if err := f.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}

	b := &BollingerBands{window: window, numSD: numSD}

	up, down, err := assignSide(f, b)
	if err != nil {
		return nil, err
	}

	b.frame = f
	b.switchUp = up
	b.switchDown = down

	return b, nil
}

// Name returns the indicator variant identifier.
func (b *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Frame returns the computed table.
func (b *BollingerBands) Frame() *series.Frame {
	return b.frame
}

// SwitchUp returns the upward crossing events.
func (b *BollingerBands) SwitchUp() series.Sparse {
	return b.switchUp
}

// SwitchDown returns the downward crossing events.
func (b *BollingerBands) SwitchDown() series.Sparse {
	return b.switchDown
}

// UpCross fires when the price crosses from above to below the lower band,
// a mean-reversion buy.
func (b *BollingerBands) UpCross(f *series.Frame) (series.Sparse, error) {
	return b.cross(f, "lower_band", func(prevPrice, prevBand, price, band float64) bool {
		return prevPrice > prevBand && price < band
	})
}

// DownCross fires when the price crosses from below to above the upper band.
func (b *BollingerBands) DownCross(f *series.Frame) (series.Sparse, error) {
	return b.cross(f, "upper_band", func(prevPrice, prevBand, price, band float64) bool {
		return prevPrice < prevBand && price > band
	})
}

func (b *BollingerBands) cross(f *series.Frame, band string, fires func(prevPrice, prevBand, price, band float64) bool) (series.Sparse, error) {
	price, err := f.Column(series.ColumnPrice)
	if err != nil {
		return series.Sparse{}, err
	}

	bandVals, err := f.Column(band)
	if err != nil {
		return series.Sparse{}, err
	}

	var out series.Sparse

	for i := 1; i < f.Len(); i++ {
		if fires(price[i-1], bandVals[i-1], price[i], bandVals[i]) {
			out.Append(f.Time(i), price[i])
		}
	}

	return out, nil
}

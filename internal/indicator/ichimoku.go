package indicator

import (
	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Default Ichimoku Kinko Hyo windows.
const (
	DefaultTenkaSenWindow = 9
	DefaultKijunSenWindow = 26
	DefaultSenkouWindow   = 52
)

// The lagging span is always the price 26 bars back, independent of the
// kijun window parameter.
const chikouSpanShift = 26

var _ SignalGenerator = (*Ichimoku)(nil)

// Ichimoku computes the Ichimoku Kinko Hyo lines and signals on crossovers
// of the two leading spans (a shift between bearish and bullish cloud).
// Rows where the price sits strictly inside the cloud are forced to a
// neutral side after the forward fill.
type Ichimoku struct {
	tenkaSenWindow int
	kijunSenWindow int
	senkouWindow   int
	frame          *series.Frame
	switchUp       series.Sparse
	switchDown     series.Sparse
}

// NewIchimoku builds the indicator over prices. Both leading spans are
// shifted forward by the kijun window so they plot ahead of the price that
// produced them.
func NewIchimoku(prices *series.Series, tenkaSenWindow, kijunSenWindow, senkouWindow int) (*Ichimoku, error) {
	if prices == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "price series is required")
	}

	for _, w := range []struct {
		name  string
		value int
	}{
		{"tenka_sen_window", tenkaSenWindow},
		{"kijun_sen_window", kijunSenWindow},
		{"senkou_window", senkouWindow},
	} {
		if w.value <= 0 {
			return nil, errors.Newf(errors.ErrCodeInvalidWindow, "%s must be a positive integer, got %d", w.name, w.value)
		}
	}

	closes := prices.Values()

	tenka := midline(closes, tenkaSenWindow)
	kijun := midline(closes, kijunSenWindow)

	spanA := series.NaN(len(closes))
	for i := range closes {
		spanA[i] = (tenka[i] + kijun[i]) / 2
	}

	spanA = series.Shift(spanA, kijunSenWindow)
	spanB := series.Shift(midline(closes, senkouWindow), kijunSenWindow)
	chikou := series.Shift(closes, chikouSpanShift)

	f := series.NewFrame(prices)

	for _, col := range []struct {
		name   string
		values []float64
	}{
		{"tenka_sen", tenka},
		{"kijun_sen", kijun},
		{"senkou_span_a", spanA},
		{"senkou_span_b", spanB},
		{"chikou_span", chikou},
	} {
		if err := f.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}

	ich := &Ichimoku{
		tenkaSenWindow: tenkaSenWindow,
		kijunSenWindow: kijunSenWindow,
		senkouWindow:   senkouWindow,
	}

	up, down, err := assignSide(f, ich)
	if err != nil {
		return nil, err
	}

	// Inside the cloud (either orientation) the direction is uncertain.
	// NaN spans never satisfy either comparison, so warm-up rows are left
	// alone.
	err = overrideNeutral(f, func(i int) bool {
		price := closes[i]

		return (spanA[i] < price && price < spanB[i]) || (spanB[i] < price && price < spanA[i])
	})
	if err != nil {
		return nil, err
	}

	ich.frame = f
	ich.switchUp = up
	ich.switchDown = down

	return ich, nil
}

// midline is the midpoint of the rolling high and rolling low over window.
func midline(values []float64, window int) []float64 {
	high := series.RollingMax(values, window)
	low := series.RollingMin(values, window)

	out := series.NaN(len(values))
	for i := range values {
		out[i] = (high[i] + low[i]) / 2
	}

	return out
}

// Name returns the indicator variant identifier.
func (ich *Ichimoku) Name() types.IndicatorType {
	return types.IndicatorTypeIchimoku
}

// Frame returns the computed table.
func (ich *Ichimoku) Frame() *series.Frame {
	return ich.frame
}

// SwitchUp returns the upward crossing events.
func (ich *Ichimoku) SwitchUp() series.Sparse {
	return ich.switchUp
}

// SwitchDown returns the downward crossing events.
func (ich *Ichimoku) SwitchDown() series.Sparse {
	return ich.switchDown
}

// UpCross fires when span A crosses above span B, a shift from bearish to
// bullish cloud.
func (ich *Ichimoku) UpCross(f *series.Frame) (series.Sparse, error) {
	return ich.cross(f, func(prevA, prevB, a, b float64) bool {
		return prevA < prevB && a > b
	})
}

// DownCross fires on the reverse span crossover.
func (ich *Ichimoku) DownCross(f *series.Frame) (series.Sparse, error) {
	return ich.cross(f, func(prevA, prevB, a, b float64) bool {
		return prevA > prevB && a < b
	})
}

func (ich *Ichimoku) cross(f *series.Frame, fires func(prevA, prevB, a, b float64) bool) (series.Sparse, error) {
	spanA, err := f.Column("senkou_span_a")
	if err != nil {
		return series.Sparse{}, err
	}

	spanB, err := f.Column("senkou_span_b")
	if err != nil {
		return series.Sparse{}, err
	}

	price, err := f.Column(series.ColumnPrice)
	if err != nil {
		return series.Sparse{}, err
	}

	var out series.Sparse

	for i := 1; i < f.Len(); i++ {
		if fires(spanA[i-1], spanB[i-1], spanA[i], spanB[i]) {
			out.Append(f.Time(i), price[i])
		}
	}

	return out, nil
}

package indicator

import (
	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Default Stochastic Oscillator parameters.
const (
	DefaultStochasticWindow    = 20
	DefaultStochasticSmoothing = 3
)

const (
	stochasticOversold   = 20.0
	stochasticOverbought = 80.0
)

var _ SignalGenerator = (*Stochastic)(nil)

// Stochastic computes the %K oscillator over a rolling window and its
// %D smoothing, and signals on %D/%K crossovers that occur inside the
// oversold or overbought zone.
type Stochastic struct {
	window      int
	stochWindow int
	frame       *series.Frame
	switchUp    series.Sparse
	switchDown  series.Sparse
}

// NewStochastic builds the indicator over prices. stochWindow is the
// rolling-mean smoothing period for %D.
func NewStochastic(prices *series.Series, window, stochWindow int) (*Stochastic, error) {
	if prices == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "price series is required")
	}

	if window <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window must be a positive integer, got %d", window)
	}

	if stochWindow <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "stoch_window must be a positive integer, got %d", stochWindow)
	}

	closes := prices.Values()
	high := series.RollingMax(closes, window)
	low := series.RollingMin(closes, window)

	k := series.NaN(len(closes))
	for i := range closes {
		k[i] = 100 * (closes[i] - low[i]) / (high[i] - low[i])
	}

	d := series.RollingMean(k, stochWindow)

	f := series.NewFrame(prices)
	if err := f.AddColumn("%K", k); err != nil {
		return nil, err
	}

	if err := f.AddColumn("%D", d); err != nil {
		return nil, err
	}

	s := &Stochastic{window: window, stochWindow: stochWindow}

	up, down, err := assignSide(f, s)
	if err != nil {
		return nil, err
	}

	s.frame = f
	s.switchUp = up
	s.switchDown = down

	return s, nil
}

// Name returns the indicator variant identifier.
func (s *Stochastic) Name() types.IndicatorType {
	return types.IndicatorTypeStochastic
}

// Frame returns the computed table.
func (s *Stochastic) Frame() *series.Frame {
	return s.frame
}

// SwitchUp returns the upward crossing events.
func (s *Stochastic) SwitchUp() series.Sparse {
	return s.switchUp
}

// SwitchDown returns the downward crossing events.
func (s *Stochastic) SwitchDown() series.Sparse {
	return s.switchDown
}

// UpCross fires on a bullish %D/%K crossover in oversold territory: %K
// below 20, %D above %K on the previous bar, %D below %K on the current
// bar.
func (s *Stochastic) UpCross(f *series.Frame) (series.Sparse, error) {
	return s.cross(f, func(prevK, prevD, k, d float64) bool {
		return k < stochasticOversold && prevD > prevK && d < k
	})
}

// DownCross is the symmetric construction in overbought territory: %K
// above 80, %D below %K on the previous bar, %D above %K on the current
// bar.
func (s *Stochastic) DownCross(f *series.Frame) (series.Sparse, error) {
	return s.cross(f, func(prevK, prevD, k, d float64) bool {
		return k > stochasticOverbought && prevD < prevK && d > k
	})
}

func (s *Stochastic) cross(f *series.Frame, fires func(prevK, prevD, k, d float64) bool) (series.Sparse, error) {
	k, err := f.Column("%K")
	if err != nil {
		return series.Sparse{}, err
	}

	d, err := f.Column("%D")
	if err != nil {
		return series.Sparse{}, err
	}

	price, err := f.Column(series.ColumnPrice)
	if err != nil {
		return series.Sparse{}, err
	}

	var out series.Sparse

	for i := 1; i < f.Len(); i++ {
		if fires(k[i-1], d[i-1], k[i], d[i]) {
			out.Append(f.Time(i), price[i])
		}
	}

	return out, nil
}

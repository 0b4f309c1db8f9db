// Package stats holds standalone statistics consumers of the price series,
// kept apart from the indicator engine.
package stats

import (
	"fmt"
	"math"

	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Default rolling autocorrelation parameters.
const (
	DefaultAutocorrWindow = 20
	DefaultAutocorrLag    = 1
)

// RollingAutocorr returns the rolling lag-k autocorrelation of prices: for
// each position with a full window of non-missing observations, the sample
// Pearson correlation between the window and its lag-shifted self. The
// result is named Autocor_<lag>_lag. Positions without a full window, and
// windows the lag does not fit into, are NaN.
func RollingAutocorr(prices *series.Series, window, lag int) (*series.Series, error) {
	if prices == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "price series is required")
	}

	if window < 2 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window must be at least 2, got %d", window)
	}

	if lag <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidLag, "lag must be a positive integer, got %d", lag)
	}

	values := prices.Values()
	out := series.NaN(len(values))

	for i := window - 1; i < len(values); i++ {
		win := values[i-window+1 : i+1]
		if hasNaN(win) {
			continue
		}

		if lag < window {
			out[i] = pearson(win[:window-lag], win[lag:])
		}
	}

	return series.New(fmt.Sprintf("Autocor_%d_lag", lag), prices.Times(), out)
}

func hasNaN(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// pearson computes the sample correlation of two equal-length slices.
// Degenerate inputs (a constant side) yield NaN.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return math.NaN()
	}

	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}

	meanX /= n
	meanY /= n

	var cov, varX, varY float64

	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	return cov / math.Sqrt(varX*varY)
}

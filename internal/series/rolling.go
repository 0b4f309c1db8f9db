package series

import "math"

// Rolling-window primitives with full-window semantics: position i gets a
// value only once the window ending at i holds `window` observations none
// of which is NaN; every other position is NaN. This mirrors the warm-up
// behavior of columnar TA libraries (min_periods = window) and makes the
// undefined prefix explicit in the output.

func rollingApply(values []float64, window int, agg func(win []float64) float64) []float64 {
	out := NaN(len(values))
	if window <= 0 {
		return out
	}

	for i := window - 1; i < len(values); i++ {
		win := values[i-window+1 : i+1]
		if hasNaN(win) {
			continue
		}

		out[i] = agg(win)
	}

	return out
}

func hasNaN(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// RollingMean returns the rolling arithmetic mean over window observations.
func RollingMean(values []float64, window int) []float64 {
	return rollingApply(values, window, func(win []float64) float64 {
		sum := 0.0
		for _, v := range win {
			sum += v
		}

		return sum / float64(len(win))
	})
}

// RollingMin returns the rolling minimum over window observations.
func RollingMin(values []float64, window int) []float64 {
	return rollingApply(values, window, func(win []float64) float64 {
		m := win[0]
		for _, v := range win[1:] {
			if v < m {
				m = v
			}
		}

		return m
	})
}

// RollingMax returns the rolling maximum over window observations.
func RollingMax(values []float64, window int) []float64 {
	return rollingApply(values, window, func(win []float64) float64 {
		m := win[0]
		for _, v := range win[1:] {
			if v > m {
				m = v
			}
		}

		return m
	})
}

// RollingStd returns the rolling population standard deviation (divisor =
// window, not window-1) over window observations.
func RollingStd(values []float64, window int) []float64 {
	return rollingApply(values, window, func(win []float64) float64 {
		mean := 0.0
		for _, v := range win {
			mean += v
		}

		mean /= float64(len(win))

		var sq float64
		for _, v := range win {
			d := v - mean
			sq += d * d
		}

		return math.Sqrt(sq / float64(len(win)))
	})
}

// EWMMean returns the exponentially weighted mean with the given span:
// alpha = 2/(span+1), weights normalized over the observations seen so far
// (pandas ewm adjust=true). NaN inputs contribute nothing but still decay
// the accumulated weights, and the output stays NaN until the first
// non-NaN observation.
func EWMMean(values []float64, span float64) []float64 {
	out := NaN(len(values))
	if span <= 0 {
		return out
	}

	alpha := 2.0 / (span + 1.0)
	decay := 1.0 - alpha

	num, den := 0.0, 0.0

	for i, v := range values {
		num *= decay
		den *= decay

		if !math.IsNaN(v) {
			num += v
			den += 1.0
		}

		if den > 0 {
			out[i] = num / den
		}
	}

	return out
}

// Shift moves values forward by n positions: position i takes the value
// from position i-n, and the first n positions become NaN. A negative n
// shifts backward. Shifting a line forward plots it ahead of the price
// that produced it (a leading span); the shifted-in region is NaN.
func Shift(values []float64, n int) []float64 {
	out := NaN(len(values))

	for i := range values {
		j := i - n
		if j >= 0 && j < len(values) {
			out[i] = values[j]
		}
	}

	return out
}

// Diff returns the bar-over-bar difference, NaN at the first position.
func Diff(values []float64) []float64 {
	out := NaN(len(values))

	for i := 1; i < len(values); i++ {
		out[i] = values[i] - values[i-1]
	}

	return out
}

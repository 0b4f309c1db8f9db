package types

// IndicatorType identifies a technical indicator variant.
type IndicatorType string

const (
	IndicatorTypeWilliamsR      IndicatorType = "williams_r"
	IndicatorTypeEMACross       IndicatorType = "ema_cross"
	IndicatorTypeBollingerBands IndicatorType = "bollinger_bands"
	IndicatorTypeCCI            IndicatorType = "cci"
	IndicatorTypeStochastic     IndicatorType = "stochastic_oscillator"
	IndicatorTypeIchimoku       IndicatorType = "ichimoku"
	IndicatorTypeRSI            IndicatorType = "rsi"
)

// Side is the directional position signal derived from crossover events.
// Rows before the first crossing event carry no side at all; they are
// represented as optional.None[Side] in the frame, not as a Side value.
type Side int

const (
	SideShort   Side = -1
	SideNeutral Side = 0
	SideLong    Side = 1
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLong:
		return "long"
	case SideShort:
		return "short"
	case SideNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

package indicator

import (
	"math"

	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// DefaultCCIWindow is the standard CCI lookback.
const DefaultCCIWindow = 20

const cciScale = 0.015

var _ Indicator = (*CCI)(nil)

// CCI is the Commodity Channel Index computed on the close price (typical
// price replaced by close). It belongs to the metric-only capability tier:
// it exposes no crossing predicates, events, or side column, only the raw
// indicator table.
type CCI struct {
	window int
	frame  *series.Frame
}

// NewCCI builds the indicator over prices. CCI = (price - MA) /
// (0.015 * MeanDeviation) with MeanDeviation the rolling mean of the
// absolute deviation from the rolling mean.
func NewCCI(prices *series.Series, window int) (*CCI, error) {
	if prices == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "price series is required")
	}

	if window <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window must be a positive integer, got %d", window)
	}

	closes := prices.Values()
	ma := series.RollingMean(closes, window)

	absDev := series.NaN(len(closes))
	for i := range closes {
		absDev[i] = math.Abs(closes[i] - ma[i])
	}

	meanDev := series.RollingMean(absDev, window)

	cci := series.NaN(len(closes))
	for i := range closes {
		cci[i] = (closes[i] - ma[i]) / (cciScale * meanDev[i])
	}

	f := series.NewFrame(prices)
	if err := f.AddColumn("CCI", cci); err != nil {
		return nil, err
	}

	return &CCI{window: window, frame: f}, nil
}

// Name returns the indicator variant identifier.
func (c *CCI) Name() types.IndicatorType {
	return types.IndicatorTypeCCI
}

// Frame returns the computed table.
func (c *CCI) Frame() *series.Frame {
	return c.frame
}

package indicator

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/theAfricanQuant/capstone/internal/series"
)

type OverlayTestSuite struct {
	suite.Suite
}

func TestOverlaySuite(t *testing.T) {
	suite.Run(t, new(OverlayTestSuite))
}

func (suite *OverlayTestSuite) bollinger() SignalGenerator {
	prices := newTestSeries(suite.T(), 10, 11, 10, 11, 10, 6, 10, 11, 15, 11, 10)

	ind, err := NewBollingerBands(prices, 3, 1)
	suite.Require().NoError(err)

	return ind
}

func (suite *OverlayTestSuite) TestExcludesAuxiliaryColumns() {
	overlay, err := BuildOverlay(suite.bollinger(), optional.None[time.Time]())
	suite.Require().NoError(err)

	// standard_deviation lives on a different scale than the price and is
	// dropped from the line overlay.
	suite.Equal([]string{series.ColumnPrice, "average", "upper_band", "lower_band"}, overlay.Order)
	suite.NotContains(overlay.Order, "standard_deviation")
	suite.Len(overlay.Lines, 4)
	suite.Len(overlay.Times, 11)
	suite.Len(overlay.Lines["average"], 11)

	suite.Equal(1, overlay.Buys.Len())
	suite.True(overlay.Buys.Time(0).Equal(testDay(5)))
	suite.Equal(1, overlay.Sells.Len())
	suite.True(overlay.Sells.Time(0).Equal(testDay(8)))
}

func (suite *OverlayTestSuite) TestOscillatorKeepsOnlyPrice() {
	prices := newTestSeries(suite.T(), 10, 11, 12, 5, 11.9)

	ind, err := NewWilliamsR(prices, 3)
	suite.Require().NoError(err)

	overlay, err := BuildOverlay(ind, optional.None[time.Time]())
	suite.Require().NoError(err)

	suite.Equal([]string{series.ColumnPrice}, overlay.Order)
}

func (suite *OverlayTestSuite) TestFromRestrictsRowsAndMarkers() {
	overlay, err := BuildOverlay(suite.bollinger(), optional.Some(testDay(6)))
	suite.Require().NoError(err)

	suite.Len(overlay.Times, 5)
	suite.True(overlay.Times[0].Equal(testDay(6)))
	suite.Len(overlay.Lines[series.ColumnPrice], 5)

	// The buy at bar 5 falls before the window; the sell at bar 8 survives.
	suite.Equal(0, overlay.Buys.Len())
	suite.Require().Equal(1, overlay.Sells.Len())
	suite.True(overlay.Sells.Time(0).Equal(testDay(8)))
}

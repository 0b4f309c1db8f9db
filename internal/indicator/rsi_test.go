package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestValidation() {
	prices := newTestSeries(suite.T(), 1, 2, 3)

	_, err := NewRSI(nil, 14)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	_, err = NewRSI(prices, 0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidWindow))
}

// A strictly rising series has zero average loss: RSI pins to 100 from the
// second bar and neither threshold crossing can fire.
func (suite *RSITestSuite) TestMonotoneRise() {
	prices := newTestSeries(suite.T(), 1, 2, 3, 4, 5, 6, 7, 8)

	ind, err := NewRSI(prices, 3)
	suite.Require().NoError(err)
	suite.Equal(types.IndicatorTypeRSI, ind.Name())

	rsi, err := ind.Frame().Column("RSI")
	suite.Require().NoError(err)

	suite.True(math.IsNaN(rsi[0]))

	for i := 1; i < len(rsi); i++ {
		suite.InDelta(100.0, rsi[i], 1e-9)
	}

	suite.Equal(0, ind.SwitchUp().Len())
	suite.Equal(0, ind.SwitchDown().Len())
}

func (suite *RSITestSuite) TestValues() {
	prices := newTestSeries(suite.T(), 10, 11, 12, 11.8, 11.6, 11.4, 5, 5.2, 5.1, 12, 13, 12.9)

	ind, err := NewRSI(prices, 3)
	suite.Require().NoError(err)

	rsi, err := ind.Frame().Column("RSI")
	suite.Require().NoError(err)

	expected := []float64{
		math.NaN(), 100, 100, 78.9474, 55.5556, 34.8837,
		1.4058, 6.9850, 6.6109, 88.8701, 91.1337, 87.5716,
	}

	suite.True(math.IsNaN(rsi[0]))

	for i := 1; i < len(expected); i++ {
		suite.InDelta(expected[i], rsi[i], 1e-3)
	}
}

func (suite *RSITestSuite) TestCrossingsAndNeutralBand() {
	prices := newTestSeries(suite.T(), 10, 11, 12, 11.8, 11.6, 11.4, 5, 5.2, 5.1, 12, 13, 12.9)

	ind, err := NewRSI(prices, 3)
	suite.Require().NoError(err)

	// RSI falls through 30 on the crash to 5 at bar 6.
	up := ind.SwitchUp()
	suite.Require().Equal(1, up.Len())
	suite.True(up.Time(0).Equal(testDay(6)))
	suite.InDelta(5.0, up.Value(0), 1e-9)

	// RSI rises through 70 on the recovery at bar 9.
	down := ind.SwitchDown()
	suite.Require().Equal(1, down.Len())
	suite.True(down.Time(0).Equal(testDay(9)))
	suite.InDelta(12.0, down.Value(0), 1e-9)

	// Bars 4 and 5 sit inside the 30-70 band: neutral beats the fill, and
	// bars before any event stay undefined.
	f := ind.Frame()

	for i := 0; i <= 3; i++ {
		suite.True(f.SideAt(i).IsNone())
	}

	suite.Equal(types.SideNeutral, f.SideAt(4).Unwrap())
	suite.Equal(types.SideNeutral, f.SideAt(5).Unwrap())

	for i := 6; i <= 8; i++ {
		suite.Equal(types.SideLong, f.SideAt(i).Unwrap())
	}

	for i := 9; i <= 11; i++ {
		suite.Equal(types.SideShort, f.SideAt(i).Unwrap())
	}
}

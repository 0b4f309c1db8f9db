package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

type StochasticTestSuite struct {
	suite.Suite
}

func TestStochasticSuite(t *testing.T) {
	suite.Run(t, new(StochasticTestSuite))
}

func (suite *StochasticTestSuite) TestValidation() {
	prices := newTestSeries(suite.T(), 1, 2, 3)

	_, err := NewStochastic(nil, 20, 3)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	_, err = NewStochastic(prices, 0, 3)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidWindow))

	_, err = NewStochastic(prices, 20, 0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidWindow))
}

func (suite *StochasticTestSuite) TestOscillatorValues() {
	prices := newTestSeries(suite.T(), 10, 12, 14, 16, 18, 17.9, 6, 7, 6.5, 18, 17, 17.5)

	ind, err := NewStochastic(prices, 4, 2)
	suite.Require().NoError(err)
	suite.Equal(types.IndicatorTypeStochastic, ind.Name())

	k, err := ind.Frame().Column("%K")
	suite.Require().NoError(err)

	d, err := ind.Frame().Column("%D")
	suite.Require().NoError(err)

	for i := 0; i < 3; i++ {
		suite.True(math.IsNaN(k[i]))
	}
	suite.True(math.IsNaN(d[3]))

	// %K pins to 100 at a rolling high and to 0 at a rolling low.
	suite.InDelta(100.0, k[3], 1e-9)
	suite.InDelta(100.0, k[4], 1e-9)
	suite.InDelta(97.5, k[5], 1e-9)
	suite.InDelta(0.0, k[6], 1e-9)
	suite.InDelta(100.0/12.0, k[7], 1e-9)
	suite.InDelta(100.0*0.5/11.9, k[8], 1e-9)
	suite.InDelta(100.0, k[9], 1e-9)

	suite.InDelta(100.0, d[4], 1e-9)
	suite.InDelta(98.75, d[5], 1e-9)
	suite.InDelta(48.75, d[6], 1e-9)
	suite.InDelta(100.0/24.0, d[7], 1e-9)
}

func (suite *StochasticTestSuite) TestCrossings() {
	prices := newTestSeries(suite.T(), 10, 12, 14, 16, 18, 17.9, 6, 7, 6.5, 18, 17, 17.5)

	ind, err := NewStochastic(prices, 4, 2)
	suite.Require().NoError(err)

	// %D drops below %K inside the oversold zone at bar 7.
	up := ind.SwitchUp()
	suite.Require().Equal(1, up.Len())
	suite.True(up.Time(0).Equal(testDay(7)))
	suite.InDelta(7.0, up.Value(0), 1e-9)

	// %D rises back above %K inside the overbought zone at bar 10.
	down := ind.SwitchDown()
	suite.Require().Equal(1, down.Len())
	suite.True(down.Time(0).Equal(testDay(10)))
	suite.InDelta(17.0, down.Value(0), 1e-9)

	f := ind.Frame()
	suite.True(f.SideAt(6).IsNone())
	suite.Equal(types.SideLong, f.SideAt(7).Unwrap())
	suite.Equal(types.SideLong, f.SideAt(9).Unwrap())
	suite.Equal(types.SideShort, f.SideAt(10).Unwrap())
	suite.Equal(types.SideShort, f.SideAt(11).Unwrap())
}

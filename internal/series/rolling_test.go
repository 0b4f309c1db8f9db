package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RollingTestSuite struct {
	suite.Suite
}

func TestRollingSuite(t *testing.T) {
	suite.Run(t, new(RollingTestSuite))
}

func (suite *RollingTestSuite) TestRollingMean() {
	out := RollingMean([]float64{1, 2, 3, 4, 5}, 3)

	suite.True(math.IsNaN(out[0]))
	suite.True(math.IsNaN(out[1]))
	suite.InDelta(2.0, out[2], 1e-12)
	suite.InDelta(3.0, out[3], 1e-12)
	suite.InDelta(4.0, out[4], 1e-12)
}

// A NaN observation poisons every window that contains it.
func (suite *RollingTestSuite) TestNaNPoisonsWindow() {
	out := RollingMean([]float64{1, 2, math.NaN(), 4, 5}, 2)

	suite.True(math.IsNaN(out[0]))
	suite.InDelta(1.5, out[1], 1e-12)
	suite.True(math.IsNaN(out[2]))
	suite.True(math.IsNaN(out[3]))
	suite.InDelta(4.5, out[4], 1e-12)
}

func (suite *RollingTestSuite) TestRollingMinMax() {
	values := []float64{3, 1, 4, 1, 5}

	lo := RollingMin(values, 3)
	hi := RollingMax(values, 3)

	suite.True(math.IsNaN(lo[1]))
	suite.InDelta(1.0, lo[2], 1e-12)
	suite.InDelta(1.0, lo[3], 1e-12)
	suite.InDelta(1.0, lo[4], 1e-12)
	suite.InDelta(4.0, hi[2], 1e-12)
	suite.InDelta(4.0, hi[3], 1e-12)
	suite.InDelta(5.0, hi[4], 1e-12)
}

// The divisor is the window size, not window-1.
func (suite *RollingTestSuite) TestRollingStdIsPopulation() {
	out := RollingStd([]float64{1, 2, 3}, 3)

	suite.True(math.IsNaN(out[1]))
	suite.InDelta(math.Sqrt(2.0/3.0), out[2], 1e-12)
}

func (suite *RollingTestSuite) TestRollingZeroWindow() {
	for _, out := range [][]float64{
		RollingMean([]float64{1, 2, 3}, 0),
		RollingStd([]float64{1, 2, 3}, -1),
	} {
		for _, v := range out {
			suite.True(math.IsNaN(v))
		}
	}
}

func (suite *RollingTestSuite) TestEWMMean() {
	out := EWMMean([]float64{1, 2, 3}, 3)

	// alpha = 1/2, weights normalized over the bars seen.
	suite.InDelta(1.0, out[0], 1e-12)
	suite.InDelta(2.5/1.5, out[1], 1e-12)
	suite.InDelta(4.25/1.75, out[2], 1e-12)
}

func (suite *RollingTestSuite) TestEWMMeanLeadingNaN() {
	out := EWMMean([]float64{math.NaN(), 10, 20}, 3)

	suite.True(math.IsNaN(out[0]))
	suite.InDelta(10.0, out[1], 1e-12)
	suite.InDelta(25.0/1.5, out[2], 1e-12)
}

// An interior NaN contributes no observation but still decays the weights
// of the ones before it.
func (suite *RollingTestSuite) TestEWMMeanInteriorNaN() {
	out := EWMMean([]float64{10, math.NaN(), 20}, 3)

	suite.InDelta(10.0, out[0], 1e-12)
	suite.InDelta(10.0, out[1], 1e-12)
	suite.InDelta(22.5/1.25, out[2], 1e-12)
}

func (suite *RollingTestSuite) TestShift() {
	out := Shift([]float64{1, 2, 3, 4}, 2)

	suite.True(math.IsNaN(out[0]))
	suite.True(math.IsNaN(out[1]))
	suite.InDelta(1.0, out[2], 1e-12)
	suite.InDelta(2.0, out[3], 1e-12)

	back := Shift([]float64{1, 2, 3, 4}, -1)
	suite.InDelta(2.0, back[0], 1e-12)
	suite.InDelta(4.0, back[2], 1e-12)
	suite.True(math.IsNaN(back[3]))
}

func (suite *RollingTestSuite) TestDiff() {
	out := Diff([]float64{1, 3, 6})

	suite.True(math.IsNaN(out[0]))
	suite.InDelta(2.0, out[1], 1e-12)
	suite.InDelta(3.0, out[2], 1e-12)
}

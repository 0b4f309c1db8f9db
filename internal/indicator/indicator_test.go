package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

var testBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestSeries builds a daily price series starting at testBase.
func newTestSeries(t *testing.T, values ...float64) *series.Series {
	t.Helper()

	times := make([]time.Time, len(values))
	for i := range values {
		times[i] = testBase.AddDate(0, 0, i)
	}

	s, err := series.New(series.ColumnPrice, times, values)
	if err != nil {
		t.Fatalf("failed to build test series: %v", err)
	}

	return s
}

// testDay returns the timestamp of bar i in a test series.
func testDay(i int) time.Time {
	return testBase.AddDate(0, 0, i)
}

type ProtocolTestSuite struct {
	suite.Suite
}

func TestProtocolSuite(t *testing.T) {
	suite.Run(t, new(ProtocolTestSuite))
}

func (suite *ProtocolTestSuite) TestUnimplementedCrossDetector() {
	var d UnimplementedCrossDetector

	_, err := d.UpCross(nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeCrossDetectionNotImplemented))

	_, err = d.DownCross(nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeCrossDetectionNotImplemented))
}

// conflictingDetector fires both predicates on the same bar, violating the
// mutual-exclusion contract.
type conflictingDetector struct{}

func (conflictingDetector) UpCross(f *series.Frame) (series.Sparse, error) {
	var out series.Sparse
	out.Append(f.Time(1), 1)

	return out, nil
}

func (conflictingDetector) DownCross(f *series.Frame) (series.Sparse, error) {
	var out series.Sparse
	out.Append(f.Time(1), 1)

	return out, nil
}

func (suite *ProtocolTestSuite) TestAssignSideRejectsSharedTimestamp() {
	prices := newTestSeries(suite.T(), 1, 2, 3)
	f := series.NewFrame(prices)

	_, _, err := assignSide(f, conflictingDetector{})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeCrossConflict))
}

func (suite *ProtocolTestSuite) TestForwardFillSide() {
	times := []time.Time{testDay(0), testDay(1), testDay(2), testDay(3), testDay(4)}
	events := []crossEvent{
		{time: testDay(1), side: types.SideLong},
		{time: testDay(3), side: types.SideShort},
	}

	side := forwardFillSide(times, events)

	suite.True(side[0].IsNone())
	suite.Equal(types.SideLong, side[1].Unwrap())
	suite.Equal(types.SideLong, side[2].Unwrap())
	suite.Equal(types.SideShort, side[3].Unwrap())
	suite.Equal(types.SideShort, side[4].Unwrap())
}

func (suite *ProtocolTestSuite) TestForwardFillSideNoEvents() {
	times := []time.Time{testDay(0), testDay(1)}

	side := forwardFillSide(times, nil)

	for _, s := range side {
		suite.True(s.IsNone())
	}
}

func (suite *ProtocolTestSuite) TestMergeCrossEventsOrdering() {
	var up, down series.Sparse
	up.Append(testDay(2), 1)
	up.Append(testDay(5), 1)
	down.Append(testDay(3), 1)

	events, err := mergeCrossEvents(up, down)
	suite.NoError(err)
	suite.Len(events, 3)
	suite.Equal(types.SideLong, events[0].side)
	suite.Equal(types.SideShort, events[1].side)
	suite.Equal(types.SideLong, events[2].side)
	suite.True(events[0].time.Before(events[1].time))
	suite.True(events[1].time.Before(events[2].time))
}

func (suite *ProtocolTestSuite) TestAsSignalGenerator() {
	prices := newTestSeries(suite.T(), 1, 2, 3, 4, 5)

	wr, err := NewWilliamsR(prices, 3)
	suite.Require().NoError(err)

	sg, err := AsSignalGenerator(wr)
	suite.NoError(err)
	suite.NotNil(sg)

	cci, err := NewCCI(prices, 2)
	suite.Require().NoError(err)

	_, err = AsSignalGenerator(cci)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSignalGenerationNotSupported))
}

func (suite *ProtocolTestSuite) TestFrameIdempotent() {
	prices := newTestSeries(suite.T(), 1, 2, 3, 4, 5)

	wr, err := NewWilliamsR(prices, 3)
	suite.Require().NoError(err)

	first := wr.Frame()
	second := wr.Frame()
	suite.Same(first, second)
	suite.Equal(first.Columns(), second.Columns())
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (suite *LoggerTestSuite) TestNewLogger() {
	log, err := NewLogger()
	suite.Require().NoError(err)
	suite.NotNil(log.Logger)
}

func (suite *LoggerTestSuite) TestNopLogger() {
	log := NewNopLogger()
	suite.NotNil(log.Logger)

	// Must be safe to use and flush.
	log.Info("discarded", zap.String("key", "value"))
	suite.NoError(log.Sync())
}

func (suite *LoggerTestSuite) TestSyncNilLogger() {
	var log Logger
	suite.NoError(log.Sync())
}

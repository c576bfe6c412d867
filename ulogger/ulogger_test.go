package ulogger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ordishs/gocore"
	"github.com/stretchr/testify/require"
	"github.com/syscoin-blockchain/sysnode/ulogger"
)

func TestNewDefaultsToZerolog(t *testing.T) {
	logger := ulogger.New("test")
	require.NotNil(t, logger)

	_, ok := logger.(*ulogger.ZLoggerWrapper)
	require.True(t, ok)
}

func TestNewGoCoreLogger(t *testing.T) {
	logger := ulogger.New("test", ulogger.WithLoggerType("gocore"))
	require.NotNil(t, logger)

	_, ok := logger.(*ulogger.GoCoreLogger)
	require.True(t, ok)
}

func TestZeroLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := ulogger.NewZeroLogger("test", ulogger.WithWriter(&buf), ulogger.WithLevel("WARN"))

	require.Equal(t, int(gocore.WARN), logger.LogLevel())

	logger.SetLogLevel("DEBUG")
	require.Equal(t, int(gocore.DEBUG), logger.LogLevel())
}

func TestZeroLoggerNewInheritsLevel(t *testing.T) {
	var buf bytes.Buffer

	parent := ulogger.NewZeroLogger("parent", ulogger.WithWriter(&buf), ulogger.WithLevel("ERROR"))
	child := parent.New("child")

	require.Equal(t, parent.LogLevel(), child.LogLevel())
}

func TestVerboseTestLogger(t *testing.T) {
	logger := ulogger.NewVerboseTestLogger(t)

	// must not panic, output goes through t.Logf
	logger.Debugf("debug %s", "message")
	logger.Infof("info %s", "message")
	logger.Warnf("warn %s", "message")
	logger.Errorf("error %s", "message")

	require.Same(t, logger, logger.New("other"))
}

func TestErrorTestLogger(t *testing.T) {
	logger := ulogger.NewErrorTestLogger(t)

	// below error level nothing is emitted
	logger.Debugf("dropped")
	logger.Infof("dropped")
	logger.Warnf("dropped")

	require.Same(t, logger, logger.New("other"))
	require.Same(t, logger, logger.Duplicate())
}

func TestTestLoggerIsSilent(t *testing.T) {
	var logger ulogger.Logger = ulogger.TestLogger{}

	logger.Debugf("dropped")
	logger.Infof("dropped")
	require.Zero(t, logger.LogLevel())
}

func TestLoggerTypeRoundTrip(t *testing.T) {
	for _, loggerType := range []string{"zerolog", "gocore"} {
		logger := ulogger.New(strings.ToLower(loggerType), ulogger.WithLoggerType(loggerType))
		require.NotNil(t, logger, loggerType)
	}
}

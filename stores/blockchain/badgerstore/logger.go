package badgerstore

import (
	"strings"

	"github.com/syscoin-blockchain/sysnode/ulogger"
)

// badgerLogger adapts a ulogger.Logger to badger's Logger interface.
type badgerLogger struct {
	logger ulogger.Logger
}

func newBadgerLogger(logger ulogger.Logger) *badgerLogger {
	return &badgerLogger{logger: logger}
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.logger.Errorf(strings.TrimSuffix(format, "\n"), args...)
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.logger.Warnf(strings.TrimSuffix(format, "\n"), args...)
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {
	b.logger.Infof(strings.TrimSuffix(format, "\n"), args...)
}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {
	b.logger.Debugf(strings.TrimSuffix(format, "\n"), args...)
}

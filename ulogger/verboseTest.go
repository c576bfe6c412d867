package ulogger

import (
	"testing"
)

// VerboseTestLogger routes every level through the test's log. testing.T
// serializes concurrent Logf calls, so no locking is needed here.
type VerboseTestLogger struct {
	t *testing.T
}

func NewVerboseTestLogger(t *testing.T) *VerboseTestLogger {
	return &VerboseTestLogger{t: t}
}

func (l *VerboseTestLogger) LogLevel() int {
	return 0
}

func (l *VerboseTestLogger) SetLogLevel(_ string) {}

func (l *VerboseTestLogger) New(_ string, _ ...Option) Logger {
	return l
}

func (l *VerboseTestLogger) Duplicate(_ ...Option) Logger {
	return l
}

func (l *VerboseTestLogger) Debugf(format string, args ...interface{}) {
	l.t.Logf("[DEBUG] "+format, args...)
}

func (l *VerboseTestLogger) Infof(format string, args ...interface{}) {
	l.t.Logf("[INFO] "+format, args...)
}

func (l *VerboseTestLogger) Warnf(format string, args ...interface{}) {
	l.t.Logf("[WARN] "+format, args...)
}

func (l *VerboseTestLogger) Errorf(format string, args ...interface{}) {
	l.t.Logf("[ERROR] "+format, args...)
}

func (l *VerboseTestLogger) Fatalf(format string, args ...interface{}) {
	l.t.Fatalf("[FATAL] "+format, args...)
}

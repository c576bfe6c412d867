package ulogger

import (
	"fmt"
	"runtime"
)

// TestingT is the subset of testing.T the error test logger needs.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Logf(format string, args ...any)
}

type tHelper = interface {
	Helper()
}

// ErrorTestLogger drops everything below error level and surfaces errors
// through the test, annotated with the caller's file and line.
type ErrorTestLogger struct {
	t TestingT
}

func NewErrorTestLogger(t TestingT) *ErrorTestLogger {
	return &ErrorTestLogger{t: t}
}

func (l *ErrorTestLogger) LogLevel() int {
	return 0
}

func (l *ErrorTestLogger) SetLogLevel(level string) {}

func (l *ErrorTestLogger) New(service string, options ...Option) Logger {
	if h, ok := l.t.(tHelper); ok {
		h.Helper()
	}

	return l
}

func (l *ErrorTestLogger) Duplicate(options ...Option) Logger {
	if h, ok := l.t.(tHelper); ok {
		h.Helper()
	}

	return l
}

func (l *ErrorTestLogger) Debugf(format string, args ...interface{}) {}

func (l *ErrorTestLogger) Infof(format string, args ...interface{}) {}

func (l *ErrorTestLogger) Warnf(format string, args ...interface{}) {}

func (l *ErrorTestLogger) Errorf(format string, args ...interface{}) {
	if h, ok := l.t.(tHelper); ok {
		h.Helper()
	}

	_, file, line, _ := runtime.Caller(2)

	l.t.Logf(fmt.Sprintf("%s:%d: ERR_LEVEL %s ", file, line, format), args...)
}

func (l *ErrorTestLogger) Fatalf(format string, args ...interface{}) {
	if h, ok := l.t.(tHelper); ok {
		h.Helper()
	}

	_, file, line, _ := runtime.Caller(2)

	l.t.Logf(fmt.Sprintf("%s:%d: FATAL_LEVEL %s ", file, line, format), args...)
}

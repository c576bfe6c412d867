package ulogger

import (
	"io"
	"os"

	"github.com/ordishs/gocore"
)

type Options struct {
	loggerType string
	logLevel   string
	writer     io.Writer
	skip       int
}

type Option func(*Options)

func DefaultOptions() *Options {
	loggerType, _ := gocore.Config().Get("logger", "zerolog")
	logLevel, _ := gocore.Config().Get("logLevel", "INFO")

	return &Options{
		loggerType: loggerType,
		logLevel:   logLevel,
		writer:     os.Stdout,
		skip:       0,
	}
}

func WithLevel(logLevel string) Option {
	return func(o *Options) {
		o.logLevel = logLevel
	}
}

func WithLoggerType(loggerType string) Option {
	return func(o *Options) {
		o.loggerType = loggerType
	}
}

func WithWriter(writer io.Writer) Option {
	return func(o *Options) {
		o.writer = writer
	}
}

func WithSkipFrame(skip int) Option {
	return func(o *Options) {
		o.skip = skip
	}
}

package slideshow

import (
	"fmt"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// StderrLogger returns a bare-bones logger that outputs to whatever println is hooked up to. It has no concept of
// levels and will output everything at every level.
func StderrLogger() Logger { return stderrLogger{} }

type stderrLogger struct{}

func (stderrLogger) Debug(msg string) {
	println(msg)
}

func (stderrLogger) Debugf(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

func (stderrLogger) Info(msg string) {
	println(msg)
}

func (stderrLogger) Infof(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

// Tee returns a Logger that writes every line to all of loggers.
func Tee(loggers ...Logger) Logger {
	return tee(loggers)
}

type tee []Logger

func (t tee) Debug(msg string) {
	for _, l := range t {
		l.Debug(msg)
	}
}

func (t tee) Debugf(format string, v ...any) {
	t.Debug(fmt.Sprintf(format, v...))
}

func (t tee) Info(msg string) {
	for _, l := range t {
		l.Info(msg)
	}
}

func (t tee) Infof(format string, v ...any) {
	t.Info(fmt.Sprintf(format, v...))
}

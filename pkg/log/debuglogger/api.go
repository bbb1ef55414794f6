/*
Package debuglogger wraps a log.Logger, adding level-gated debug
methods so that it satisfies the log.DebugLogger interface.
*/
package debuglogger

import (
	"github.com/Cloud-Foundations/ddns/pkg/log"
)

type Logger struct {
	level int16
	log.Logger
}

// New will create a Logger from an existing log.Logger, adding the
// debug methods that the log.DebugLogger interface requires. The
// debug level defaults to zero (only level 0 debug messages are
// logged).
func New(logger log.Logger) *Logger {
	return &Logger{Logger: logger}
}

// Upgrade will return a log.DebugLogger from an existing log.Logger.
// If the provided logger already satisfies the interface it is
// returned directly, otherwise it is wrapped.
func Upgrade(logger log.Logger) log.DebugLogger {
	if debugLogger, ok := logger.(log.DebugLogger); ok {
		return debugLogger
	}
	return New(logger)
}

func (l *Logger) Debug(level uint8, v ...interface{}) {
	if l.level >= int16(level) {
		l.Print(v...)
	}
}

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	if l.level >= int16(level) {
		l.Printf(format, v...)
	}
}

func (l *Logger) Debugln(level uint8, v ...interface{}) {
	if l.level >= int16(level) {
		l.Println(v...)
	}
}

// GetLevel returns the current debug level.
func (l *Logger) GetLevel() int16 {
	return l.level
}

// SetLevel sets the debug level. Debug messages at or below the
// specified level will be logged.
func (l *Logger) SetLevel(maxLevel int16) {
	l.level = maxLevel
}

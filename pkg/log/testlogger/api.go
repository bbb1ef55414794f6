/*
Package testlogger provides a logger which sends messages to the
logger provided by the testing package, so that log messages emitted
during tests are captured per-test.
*/
package testlogger

import (
	"fmt"
)

// TestLogger defines the methods of testing.T that are used here, so
// that either a *testing.T or *testing.B may be passed to New.
type TestLogger interface {
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
	Log(v ...interface{})
	Logf(format string, v ...interface{})
}

type Logger struct {
	logger TestLogger
}

// New creates a Logger which logs to the test framework logger.
func New(logger TestLogger) *Logger {
	return &Logger{logger}
}

func (l *Logger) Debug(level uint8, v ...interface{}) {
	l.logger.Log(v...)
}

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	l.logger.Logf(format, v...)
}

func (l *Logger) Debugln(level uint8, v ...interface{}) {
	l.logger.Log(v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	l.logger.Fatal(v...)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatalf(format, v...)
}

func (l *Logger) Fatalln(v ...interface{}) {
	l.logger.Fatal(v...)
}

func (l *Logger) Panic(v ...interface{}) {
	panic(fmt.Sprint(v...))
}

func (l *Logger) Panicf(format string, v ...interface{}) {
	panic(fmt.Sprintf(format, v...))
}

func (l *Logger) Panicln(v ...interface{}) {
	panic(fmt.Sprintln(v...))
}

func (l *Logger) Print(v ...interface{}) {
	l.logger.Log(v...)
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.logger.Logf(format, v...)
}

func (l *Logger) Println(v ...interface{}) {
	l.logger.Log(v...)
}

/*
Package log defines interfaces for types that log messages.

The interfaces defined here are a subset of the standard library
log.Logger type, so a standard logger may be used wherever a Logger is
required.
*/
package log

// Logger defines a basic logging interface.
type Logger interface {
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
	Fatalln(v ...interface{})
	Panic(v ...interface{})
	Panicf(format string, v ...interface{})
	Panicln(v ...interface{})
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// DebugLogger defines a logging interface with level-gated debug
// logging.
type DebugLogger interface {
	Logger
	Debug(level uint8, v ...interface{})
	Debugf(level uint8, format string, v ...interface{})
	Debugln(level uint8, v ...interface{})
}

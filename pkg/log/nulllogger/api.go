/*
Package nulllogger provides a logger which discards all messages,
except Fatal and Panic messages which have their usual side effects.
*/
package nulllogger

import (
	"fmt"
	"os"
)

type Logger struct{}

func New() Logger {
	return Logger{}
}

func (l Logger) Debug(level uint8, v ...interface{}) {}

func (l Logger) Debugf(level uint8, format string, v ...interface{}) {}

func (l Logger) Debugln(level uint8, v ...interface{}) {}

func (l Logger) Fatal(v ...interface{}) {
	os.Exit(1)
}

func (l Logger) Fatalf(format string, v ...interface{}) {
	os.Exit(1)
}

func (l Logger) Fatalln(v ...interface{}) {
	os.Exit(1)
}

func (l Logger) Panic(v ...interface{}) {
	panic(fmt.Sprint(v...))
}

func (l Logger) Panicf(format string, v ...interface{}) {
	panic(fmt.Sprintf(format, v...))
}

func (l Logger) Panicln(v ...interface{}) {
	panic(fmt.Sprintln(v...))
}

func (l Logger) Print(v ...interface{}) {}

func (l Logger) Printf(format string, v ...interface{}) {}

func (l Logger) Println(v ...interface{}) {}

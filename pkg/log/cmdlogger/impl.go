package cmdlogger

import (
	"flag"
	stdlog "log"

	"github.com/Cloud-Foundations/ddns/pkg/log/debuglogger"
)

func init() {
	flag.BoolVar(&stdOptions.Datestamps, "logDatestamps",
		stdOptions.Datestamps, "If true, prefix logs with datestamps")
	flag.IntVar(&stdOptions.DebugLevel, "logDebugLevel",
		stdOptions.DebugLevel, "Debug log level")
	flag.BoolVar(&stdOptions.Subseconds, "logSubseconds",
		stdOptions.Subseconds,
		"If true, datestamps will have subsecond resolution")
}

func newLogger(options Options) *debuglogger.Logger {
	var logFlags int
	if options.Datestamps {
		logFlags |= stdlog.Ldate | stdlog.Ltime
		if options.Subseconds {
			logFlags |= stdlog.Lmicroseconds
		}
	}
	logger := debuglogger.New(stdlog.New(options.Writer, "", logFlags))
	logger.SetLevel(int16(options.DebugLevel))
	return logger
}

package log

import (
	"fmt"
	"io"
	"os"
)

const (
	levelDebug = iota
	levelInfo
	levelError
)

var (
	verbose = false
	out     io.Writer = os.Stderr

	logPrefixes = map[int]string{
		levelDebug: "\033[37m[DBG]\033[0m", // White
		levelInfo:  "\033[36m[INF]\033[0m", // Cyan
		levelError: "\033[31m[ERR]\033[0m", // Red
	}
)

// SetVerbose enables debug-level output. Off by default so the
// simulator stays silent about ignored input.
func SetVerbose(v bool) {
	verbose = v
}

// SetOutput redirects all log output. Everything goes to stderr by
// default to keep stdout clean for report lines.
func SetOutput(w io.Writer) {
	out = w
}

// Debugf logs a debug message if verbose is enabled.
func Debugf(format string, args ...interface{}) {
	if verbose {
		logMessage(levelDebug, format, args...)
	}
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs an error message and exits with status 1.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
	os.Exit(1)
}

func logMessage(level int, format string, args ...interface{}) {
	fmt.Fprintf(out, "%s %s\n", logPrefixes[level], fmt.Sprintf(format, args...))
}

package loom

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package logger. It discards everything by default so the
// engine stays silent inside applications that don't care; demos and tests
// swap in a real logger with SetLogger.
var logger = log.NewWithOptions(io.Discard, log.Options{})

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// DebugLogger returns a debug-level logger writing to stderr, for demos
// and ad-hoc troubleshooting.
func DebugLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})
}

// internal/core/logger/logger.go
package logger

import (
	"io"

	"github.com/sirupsen/logrus" // Using logrus for structured logging
)

// New builds a logger writing to out at the given level. The scanner and
// resolver take the returned handle explicitly instead of reaching for a
// process-wide instance, so tests can hand them a silent one.
func New(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: false, // Colors are good for console, can be disabled for files
	})
	log.SetLevel(parseLevel(level))
	return log
}

// Discard returns a logger that swallows everything. Handy in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel // Default to info if unknown level
	}
}

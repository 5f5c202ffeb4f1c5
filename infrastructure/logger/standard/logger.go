// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Provides structured logging with level and format selection

package standard

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	log *logrus.Logger
}

// NewStandardLogger creates an info-level text logger writing to stdout
func NewStandardLogger() *StandardLogger {
	logger, _ := NewLogger("info", "text", os.Stdout)
	return logger
}

// NewLogger creates a logger at level, formatted as "json" or "text".
// An unknown level is reported and the logger stays at info.
func NewLogger(level, format string, out io.Writer) (*StandardLogger, error) {
	l := logrus.New()
	l.SetOutput(out)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	l.SetLevel(logrus.InfoLevel)
	if level == "" {
		return &StandardLogger{log: l}, nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return &StandardLogger{log: l}, err
	}
	l.SetLevel(parsed)

	return &StandardLogger{log: l}, nil
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *StandardLogger) entry(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}

package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Fields carries structured log context.
type Fields map[string]interface{}

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	return l
}

// SetDebug raises the log level to include debug output.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	logger.WithFields(logrus.Fields(fields)).Info(msg)
}

// Debug logs a debug message with optional fields.
func Debug(msg string, fields Fields) {
	logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	entry := logger.WithFields(logrus.Fields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	entry := logger.WithFields(logrus.Fields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Fatal(msg)
}

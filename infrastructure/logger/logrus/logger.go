// ABOUTME: Logrus-backed logger implementation with structured fields
// ABOUTME: Adapts a logrus.Logger to the core Logger interface

package logrus

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using sirupsen/logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a logger with logrus defaults (text formatter,
// info level, stderr output)
func NewLogrusLogger() *LogrusLogger {
	return &LogrusLogger{log: logrus.New()}
}

// NewWithLogger wraps an existing logrus.Logger, keeping its formatter,
// level and output configuration
func NewWithLogger(log *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{log: log}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}

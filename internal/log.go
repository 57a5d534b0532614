package internal

import (
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel represents different logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel maps ERROR/WARN/INFO/DEBUG onto a level, defaulting to INFO
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LogLevelError
	case "WARN", "WARNING":
		return LogLevelWarn
	case "DEBUG":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging
type Logger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a new logger with the specified level writing to stderr
func NewLogger(level LogLevel) *Logger {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo creates a logger writing to w
func NewLoggerTo(w io.Writer, level LogLevel) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewDefaultLogger creates a logger based on LOG_LEVEL environment variable
func NewDefaultLogger() *Logger {
	return NewLogger(ParseLogLevel(os.Getenv("LOG_LEVEL")))
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, "[ERROR] ", format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, "[WARN] ", format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, "[INFO] ", format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, "[DEBUG] ", format, args...)
}

func (l *Logger) logf(level LogLevel, prefix, format string, args ...interface{}) {
	if l.level >= level {
		l.out.Printf(prefix+format, args...)
	}
}

// Writer exposes the underlying sink for access-log middleware
func (l *Logger) Writer() io.Writer {
	return l.out.Writer()
}

// Global logger instance
var DefaultLogger = NewDefaultLogger()

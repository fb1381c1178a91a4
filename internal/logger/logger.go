// Package logger provides the levelled diagnostic logger used by noserun.
// Diagnostics go to stderr (or a log file) and never into an output panel.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "noserun"})
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets level and destination. An empty level falls back to
// NOSERUN_LOG_LEVEL and then to info.
func Configure(level string, logFile string) error {
	if level == "" {
		level = os.Getenv("NOSERUN_LOG_LEVEL")
	}

	var output io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		output = file
	}

	Logger = log.NewWithOptions(output, log.Options{Prefix: "noserun"})
	Logger.SetLevel(ParseLevel(level))
	return nil
}

// ParseLevel converts a level name to a log level, defaulting to info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetOutput redirects the global logger, keeping its level
func SetOutput(w io.Writer) {
	level := Logger.GetLevel()
	Logger = log.NewWithOptions(w, log.Options{Prefix: "noserun"})
	Logger.SetLevel(level)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

// Logger writes to stderr so stdout carries only the analysis output.
type Logger struct {
	logger *charmlog.Logger
}

func NewLogger(level string) *Logger {
	return newLogger(os.Stderr, level)
}

func NewDiscardLogger() *Logger {
	return newLogger(io.Discard, string(LevelInfo))
}

func newLogger(w io.Writer, level string) *Logger {
	logLevel := parseLogLevel(level)

	return &Logger{
		logger: charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           logLevel.toCharmlogLevel(),
		}),
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l LogLevel) toCharmlogLevel() charmlog.Level {
	switch l {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelError:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// With returns a logger that adds the given key/value pairs to every entry.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{logger: l.logger.With(keyvals...)}
}

func (l *Logger) Info(format string, v ...any) {
	l.logger.Infof(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.logger.Errorf(format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	l.logger.Debugf(format, v...)
}

func (l *Logger) Fatal(v ...any) {
	l.logger.Fatal(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Format selects the slog handler used for task logs.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid log format: %s", s)
	}
}

type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(level slog.Level, out io.Writer) *SlogLogger {
	return NewSlogLoggerWithFormat(level, FormatText, out)
}

func NewSlogLoggerWithFormat(level slog.Level, format Format, out io.Writer) *SlogLogger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &SlogLogger{logger: slog.New(handler)}
}

// With returns a logger that adds args to every record.
func (l *SlogLogger) With(args ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(args...)}
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return NewSlogLogger(slog.LevelError+1, io.Discard)
}

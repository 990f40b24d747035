package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelInfo, &buf)

	assert.NotNil(t, logger)
	assert.NotNil(t, logger.logger)
}

func TestSlogLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelInfo, &buf)

	logger.Info("running gsutil", "command", "ls")

	output := buf.String()
	assert.Contains(t, output, "running gsutil")
	assert.Contains(t, output, "command=ls")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelWarn, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSlogLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerWithFormat(slog.LevelDebug, FormatJSON, &buf)

	logger.Debug("classified", "code", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "classified", record["msg"])
	assert.Equal(t, float64(2), record["code"])
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelInfo, &buf).With("task", "gsutil")

	logger.Info("done")

	assert.Contains(t, buf.String(), "task=gsutil")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("dropped")
	})
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("loaded resource", "path", "ides/vscode.json")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "loaded resource", parsed["msg"])
	assert.Equal(t, "ides/vscode.json", parsed["path"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Warn("fetch failed", "path", "features/roots.json")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "fetch failed")
	assert.Contains(t, out, "path=features/roots.json")
	assert.NotContains(t, out, "\x1b[", "bytes.Buffer is not a TTY")
}

func TestHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf}).With("component", "loader").WithGroup("fetch")

	logger.Info("done", "count", 3)

	out := buf.String()
	assert.Contains(t, out, "component=loader")
	assert.Contains(t, out, "fetch.count=3")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSupportsColor(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")
	require.NoError(t, os.Unsetenv("NO_COLOR"))
	assert.True(t, supportsColor(true))
	assert.False(t, supportsColor(false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, supportsColor(true))
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := ForTest(t)
	assert.Same(t, l, OrDiscard(l))
}

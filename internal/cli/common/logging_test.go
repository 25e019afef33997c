package common

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestLogxLevel(t *testing.T) {
	assert.Equal(t, "debug", LogxLevel("debug"))
	assert.Equal(t, "error", LogxLevel("warn"))
	assert.Equal(t, "severe", LogxLevel("severe"))
	assert.Equal(t, "info", LogxLevel(""))
}

func TestSetupLoggerWithFileWritesAndCounts(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "app.log")
	w := SetupLoggerWithFile(LogOptions{Level: "info", Format: "json", File: path, MaxSize: 1})
	require.NotNil(t, w)

	before := GetLogCounters()
	slog.Info("catalog ready", "genres", 21)
	slog.Debug("hidden")
	after := GetLogCounters()
	assert.Equal(t, before["info"]+1, after["info"])
	assert.Equal(t, before["total"]+1, after["total"])

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"catalog ready"`)
	assert.NotContains(t, string(b), "hidden")
}

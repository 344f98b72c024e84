package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel(" warning "))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLoggerLevelAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions("collector", Options{Level: "warn", Writer: &buf})

	log.Info("hidden")
	require.Zero(t, buf.Len())

	log.With("url", "https://example.com").Warn("listing skipped")
	out := buf.String()
	require.Contains(t, out, "listing skipped")
	require.Contains(t, out, "component=collector")
	require.Contains(t, out, "url=https://example.com")
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions("api", Options{JSON: true, Writer: &buf})
	log.Error("boom", "status", 502)
	require.Contains(t, buf.String(), `"msg":"boom"`)
	require.Contains(t, buf.String(), `"status":502`)
}

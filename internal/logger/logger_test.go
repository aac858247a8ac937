package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	Info("spin fulfilled", "spin_id", "abc", "payout", 20)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "spin fulfilled", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "abc", entry["spin_id"])
	assert.Equal(t, float64(20), entry["payout"])
}

func TestLevelFiltering(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Debug("hidden")
	Info("hidden too")
	Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.NotNil(t, FromContext(ctx))

	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
	assert.NotEmpty(t, GenerateRequestID())
}

func TestConfigPresets(t *testing.T) {
	prod := ProductionConfig()
	assert.True(t, prod.IsJSON())
	assert.Equal(t, slog.LevelInfo, prod.LogLevel())
	assert.False(t, prod.AddSource)

	dev := DevelopmentConfig()
	assert.False(t, dev.IsJSON())
	assert.Equal(t, slog.LevelDebug, dev.LogLevel())
	assert.True(t, dev.AddSource)

	assert.Equal(t, slog.LevelWarn, Config{Level: "WARNING"}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Level: "bogus"}.LogLevel())
	assert.NotEmpty(t, DefaultConfig().ServiceName)
}

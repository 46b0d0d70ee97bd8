package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("info", "json", "test-service", "1.0.0", EnvironmentTest, false), &buf)

	Info("test message", "key", "value", "number", 42)
	Debug("dropped below level")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, EnvironmentTest, entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestFromContext(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("debug", "json", "svc", "v", EnvironmentTest, false), &buf)

	ctx := WithPlayerID(WithRequestID(context.Background(), "req-123"), "player-1")
	assert.Equal(t, "req-123", GetRequestID(ctx))

	FromContext(ctx).Warn("scoped")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry[AttrKeyRequestID])
	assert.Equal(t, "player-1", entry[AttrKeyPlayerID])
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestConfigPresets(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		level     slog.Level
		json      bool
		addSource bool
	}{
		{"default", DefaultConfig(), slog.LevelInfo, false, false},
		{"production", ProductionConfig(), slog.LevelInfo, true, false},
		{"development", DevelopmentConfig(), slog.LevelDebug, false, true},
		{"warning alias", Config{Level: "WARNING"}, slog.LevelWarn, false, false},
		{"unknown level", Config{Level: "loud"}, slog.LevelInfo, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.level, tt.cfg.LogLevel())
			assert.Equal(t, tt.json, tt.cfg.IsJSON())
			assert.Equal(t, tt.addSource, tt.cfg.AddSource)
		})
	}
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/fragrewards/internal/clock"
	"github.com/osse101/fragrewards/internal/config"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/engine"
	"github.com/osse101/fragrewards/internal/event"
	"github.com/osse101/fragrewards/internal/persistence"
	"github.com/osse101/fragrewards/internal/player"
)

func TestInitializeStorage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     *config.Config
		check   func(t *testing.T, s *Storage)
		wantErr error
	}{
		{
			name: "memory is never cached",
			cfg:  &config.Config{StorageBackend: config.StorageMemory, CacheSize: 8},
			check: func(t *testing.T, s *Storage) {
				assert.IsType(t, &persistence.MemoryStorage{}, s.Backend)
			},
		},
		{
			name: "file without cache",
			cfg:  &config.Config{StorageBackend: config.StorageFile, DataDir: t.TempDir()},
			check: func(t *testing.T, s *Storage) {
				assert.IsType(t, &persistence.FileStorage{}, s.Backend)
			},
		},
		{
			name: "file with cache",
			cfg:  &config.Config{StorageBackend: config.StorageFile, DataDir: t.TempDir(), CacheSize: 8, CacheTTL: time.Minute},
			check: func(t *testing.T, s *Storage) {
				assert.IsType(t, &persistence.CachedStorage{}, s.Backend)
			},
		},
		{
			name:    "unknown backend",
			cfg:     &config.Config{StorageBackend: "redis"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := InitializeStorage(ctx, tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, s.DB)
			assert.Nil(t, s.Ready())
			tt.check(t, s)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cat, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, err)
		assert.NotEmpty(t, cat.Achievements)
	})

	t.Run("invalid file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "achievements.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":`), 0o600))

		_, err := LoadCatalog(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for day := 1; day <= 5; day++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_00-00-00", day))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultDeadLetterFile), nil, 0o600))

	cleanupLogs(dir, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2026-01-04_00-00-00.log",
		"session_2026-01-05_00-00-00.log",
		config.DefaultDeadLetterFile,
	}, names)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	f, err := SetupLogger(&config.Config{LogDir: dir, LogLevel: "debug", LogFormat: "json", Environment: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	slog.Info("hello from test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Equal(t, dir, filepath.Dir(f.Name()))
}

func TestEventSystem_OverflowGoesToDeadLetter(t *testing.T) {
	cfg := &config.Config{LogDir: t.TempDir()}
	sys, err := InitializeEventSystem(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, sys.Discord)

	sys.Overflow(event.NewStreakMilestoneEvent("p1", 5, time.Now()), 1, errors.New("queue full"))
	require.NoError(t, sys.Close())

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, config.DefaultDeadLetterFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"player_id":"p1"`)
	assert.Contains(t, string(data), "queue full")
}

func TestEventSystem_BadWebhookURL(t *testing.T) {
	cfg := &config.Config{LogDir: t.TempDir(), DiscordWebhookURL: "https://example.com/not-a-webhook"}
	_, err := InitializeEventSystem(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestGracefulShutdown_CheckpointsPlayers(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewStore(persistence.NewMemoryStorage())
	clk := clock.NewSimulatedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	registry := player.NewRegistry(store, func(playerID string) *engine.Engine {
		return engine.New(engine.DefaultConfig(), engine.Dependencies{PlayerID: playerID, Clock: clk})
	})

	require.NoError(t, registry.With(ctx, "p1", func(e *engine.Engine) error {
		e.StartSession()
		e.RegisterDeath()
		return nil
	}))

	GracefulShutdown(ctx, ShutdownComponents{Players: registry})

	rec, err := store.Restore(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Stats.TotalDeaths)
}

package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/fragrewards/internal/achievement"
	"github.com/osse101/fragrewards/internal/config"
	"github.com/osse101/fragrewards/internal/discord"
	"github.com/osse101/fragrewards/internal/event"
	"github.com/osse101/fragrewards/internal/metrics"
)

// EventSystem holds the bus every engine drains to and its subscribers
type EventSystem struct {
	Bus        *event.MemoryBus
	DeadLetter *event.DeadLetterWriter
	Discord    *discord.WebhookNotifier // nil when no webhook is configured
}

// Overflow handles notifications evicted from a full engine queue: they are
// counted and appended to the dead-letter file
func (s *EventSystem) Overflow(evt event.Event, attempts int, lastErr error) {
	metrics.CountDeadLetter(evt)
	s.DeadLetter.Write(evt, attempts, lastErr)
}

// InitializeEventSystem creates the bus, the dead-letter file, the metrics
// collector and, when configured, the Discord webhook notifier
func InitializeEventSystem(ctx context.Context, cfg *config.Config, catalog []achievement.Definition) (*EventSystem, error) {
	deadLetterPath := filepath.Join(cfg.LogDir, config.DefaultDeadLetterFile)
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}
	dlw, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetter, err)
	}

	sys := &EventSystem{Bus: event.NewMemoryBus(), DeadLetter: dlw}

	metrics.NewEventMetricsCollector().Register(sys.Bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if cfg.DiscordWebhookURL != "" {
		id, token, err := discord.ParseWebhookURL(cfg.DiscordWebhookURL)
		if err != nil {
			_ = dlw.Close()
			return nil, err
		}
		// Webhook execution is authorized by the token in the URL, so the
		// session carries no bot token
		session, err := discordgo.New("")
		if err != nil {
			_ = dlw.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscordSession, err)
		}
		sys.Discord = discord.NewWebhookNotifier(session, id, token, catalog, discord.DefaultQueueSize)
		sys.Discord.Start(ctx)
		event.SubscribeNotifier(sys.Bus, sys.Discord)
		slog.Info(LogMsgDiscordNotifierEnabled, "webhook_id", id)
	}

	slog.Info(LogMsgEventSystemInitialized, "deadletter_path", deadLetterPath)
	return sys, nil
}

// Close stops the Discord sender and closes the dead-letter file
func (s *EventSystem) Close() error {
	if s.Discord != nil {
		s.Discord.Stop()
	}
	return s.DeadLetter.Close()
}

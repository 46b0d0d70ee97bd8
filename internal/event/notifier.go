package event

import (
	"context"

	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/logger"
)

// Notifier is the observer interface for UI, audio and other sinks. Sinks
// must not block; a slow sink delays every other subscriber on the bus.
type Notifier interface {
	OnRewardGranted(ctx context.Context, playerID string, kind domain.RewardKind, amount int64)
	OnStreakMilestone(ctx context.Context, playerID string, milestone int)
	OnComboChanged(ctx context.Context, playerID string, count, multiplierPercent int)
	OnAchievementUnlocked(ctx context.Context, playerID, achievementID string)
}

// SubscribeNotifier routes the bus's notification events to n
func SubscribeNotifier(bus Bus, n Notifier) {
	bus.Subscribe(RewardGranted, func(ctx context.Context, e Event) error {
		p, err := DecodePayload[RewardGrantedPayloadV1](e.Payload)
		if err != nil {
			return payloadError(ctx, e, err)
		}
		n.OnRewardGranted(ctx, e.PlayerID(), p.Kind, p.Amount)
		return nil
	})
	bus.Subscribe(StreakMilestone, func(ctx context.Context, e Event) error {
		p, err := DecodePayload[StreakMilestonePayloadV1](e.Payload)
		if err != nil {
			return payloadError(ctx, e, err)
		}
		n.OnStreakMilestone(ctx, e.PlayerID(), p.Milestone)
		return nil
	})
	bus.Subscribe(ComboChanged, func(ctx context.Context, e Event) error {
		p, err := DecodePayload[ComboChangedPayloadV1](e.Payload)
		if err != nil {
			return payloadError(ctx, e, err)
		}
		n.OnComboChanged(ctx, e.PlayerID(), p.Count, p.MultiplierPercent)
		return nil
	})
	bus.Subscribe(AchievementUnlocked, func(ctx context.Context, e Event) error {
		p, err := DecodePayload[AchievementUnlockedPayloadV1](e.Payload)
		if err != nil {
			return payloadError(ctx, e, err)
		}
		n.OnAchievementUnlocked(ctx, e.PlayerID(), p.AchievementID)
		return nil
	})
}

// payloadError logs an undecodable event and reports it as handled
func payloadError(ctx context.Context, e Event, err error) error {
	logger.FromContext(ctx).Error(LogMsgPayloadMismatch, "event_type", e.Type, "error", err)
	return nil
}

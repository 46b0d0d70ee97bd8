package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/fragrewards/internal/event"
	"github.com/osse101/fragrewards/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every notification type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.RewardGranted:
		var p event.RewardGrantedPayloadV1
		if p, err = event.DecodePayload[event.RewardGrantedPayloadV1](evt.Payload); err == nil {
			RewardsGranted.WithLabelValues(string(p.Kind), string(p.Source)).Inc()
			RewardAmount.WithLabelValues(string(p.Kind), string(p.Source)).Add(float64(p.Amount))
		}

	case event.StreakMilestone:
		var p event.StreakMilestonePayloadV1
		if p, err = event.DecodePayload[event.StreakMilestonePayloadV1](evt.Payload); err == nil {
			StreakMilestones.WithLabelValues(strconv.Itoa(p.Milestone)).Inc()
		}

	case event.AchievementUnlocked:
		var p event.AchievementUnlockedPayloadV1
		if p, err = event.DecodePayload[event.AchievementUnlockedPayloadV1](evt.Payload); err == nil {
			AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()
		}
	}
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// CountDeadLetter records a notification evicted from a full queue
func CountDeadLetter(evt event.Event) {
	EventsDeadLettered.WithLabelValues(string(evt.Type)).Inc()
}

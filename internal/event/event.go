package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/fragrewards/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a notification raised by a player's engine
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// PlayerID returns the player the event belongs to, if recorded
func (e Event) PlayerID() string {
	id, _ := e.GetMetadataValue(MetadataPlayerID).(string)
	return id
}

// Notification event types
const (
	RewardGranted       Type = "reward.granted"
	StreakMilestone     Type = "streak.milestone"
	StreakEnded         Type = "streak.ended"
	ComboChanged        Type = "combo.changed"
	AchievementUnlocked Type = "achievement.unlocked"
)

// AllTypes lists every notification type in a stable order
var AllTypes = []Type{RewardGranted, StreakMilestone, StreakEnded, ComboChanged, AchievementUnlocked}

// RewardGrantedPayloadV1 is the typed payload for reward grants
type RewardGrantedPayloadV1 struct {
	Kind      domain.RewardKind   `json:"kind"`
	Amount    int64               `json:"amount"`
	Source    domain.RewardSource `json:"source"`
	Timestamp int64               `json:"timestamp"`
}

// StreakMilestonePayloadV1 is the typed payload for streak milestones
type StreakMilestonePayloadV1 struct {
	Milestone int   `json:"milestone"`
	Timestamp int64 `json:"timestamp"`
}

// StreakEndedPayloadV1 is the typed payload for a streak reset
type StreakEndedPayloadV1 struct {
	LostCount int    `json:"lost_count"`
	Reason    string `json:"reason"` // "timeout" or "death"
	Timestamp int64  `json:"timestamp"`
}

// ComboChangedPayloadV1 is the typed payload for combo increments and resets
type ComboChangedPayloadV1 struct {
	Count             int   `json:"count"`
	MultiplierPercent int   `json:"multiplier_percent"`
	Timestamp         int64 `json:"timestamp"`
}

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlocks
type AchievementUnlockedPayloadV1 struct {
	AchievementID string `json:"achievement_id"`
	DisplayName   string `json:"display_name"`
	RewardCredits int64  `json:"reward_credits"`
	RewardXP      int64  `json:"reward_xp"`
	Timestamp     int64  `json:"timestamp"`
}

func newEvent(playerID string, t Type, payload interface{}) Event {
	e := Event{Version: EventSchemaVersion, Type: t, Payload: payload}
	if playerID != "" {
		e.Metadata = Metadata{MetadataPlayerID: playerID}
	}
	return e
}

// NewRewardGrantedEvent creates a reward granted event
func NewRewardGrantedEvent(playerID string, kind domain.RewardKind, amount int64, source domain.RewardSource, at time.Time) Event {
	return newEvent(playerID, RewardGranted, RewardGrantedPayloadV1{
		Kind:      kind,
		Amount:    amount,
		Source:    source,
		Timestamp: at.Unix(),
	})
}

// NewStreakMilestoneEvent creates a streak milestone event
func NewStreakMilestoneEvent(playerID string, milestone int, at time.Time) Event {
	return newEvent(playerID, StreakMilestone, StreakMilestonePayloadV1{
		Milestone: milestone,
		Timestamp: at.Unix(),
	})
}

// NewStreakEndedEvent creates a streak ended event
func NewStreakEndedEvent(playerID string, lost int, reason string, at time.Time) Event {
	return newEvent(playerID, StreakEnded, StreakEndedPayloadV1{
		LostCount: lost,
		Reason:    reason,
		Timestamp: at.Unix(),
	})
}

// NewComboChangedEvent creates a combo changed event
func NewComboChangedEvent(playerID string, count, multiplierPercent int, at time.Time) Event {
	return newEvent(playerID, ComboChanged, ComboChangedPayloadV1{
		Count:             count,
		MultiplierPercent: multiplierPercent,
		Timestamp:         at.Unix(),
	})
}

// NewAchievementUnlockedEvent creates an achievement unlocked event
func NewAchievementUnlockedEvent(playerID, achievementID, displayName string, rewardCredits, rewardXP int64, at time.Time) Event {
	return newEvent(playerID, AchievementUnlocked, AchievementUnlockedPayloadV1{
		AchievementID: achievementID,
		DisplayName:   displayName,
		RewardCredits: rewardCredits,
		RewardXP:      rewardXP,
		Timestamp:     at.Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher delivers a single event
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event's type synchronously. All
// handlers run even if some fail; the failures are returned together.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

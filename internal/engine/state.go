package engine

import (
	"github.com/osse101/fragrewards/internal/achievement"
	"github.com/osse101/fragrewards/internal/dailybonus"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/ledger"
	"github.com/osse101/fragrewards/internal/multiplier"
	"github.com/osse101/fragrewards/internal/persistence"
	"github.com/osse101/fragrewards/internal/streak"
)

// Snapshot is a read-only view of the engine for display
type Snapshot struct {
	PlayerID            string             `json:"player_id"`
	Stats               domain.LedgerStats `json:"stats"`
	CurrentStreak       int                `json:"current_streak"`
	CurrentCombo        int                `json:"current_combo"`
	StreakMultiplier    float64            `json:"streak_multiplier"`
	ComboMultiplier     float64            `json:"combo_multiplier"`
	Policy              multiplier.Policy  `json:"policy"`
	UnlockedCount       int                `json:"unlocked_count"`
	DailyBonusAvailable bool               `json:"daily_bonus_available"`
	LastDailyBonus      string             `json:"last_daily_bonus,omitempty"`
	Session             *Session           `json:"session,omitempty"`
	PendingEvents       int                `json:"pending_events"`
}

// Stats returns the lifetime statistics
func (e *Engine) Stats() domain.LedgerStats {
	return e.ledger.Stats()
}

// CurrentStreak returns the streak count as observed now
func (e *Engine) CurrentStreak() int {
	return e.streak.CountAt(e.clock.Now())
}

// MaxStreak returns the highest streak ever reached
func (e *Engine) MaxStreak() int {
	return e.streak.MaxCount()
}

// CurrentCombo returns the combo count as observed now
func (e *Engine) CurrentCombo() int {
	return e.combo.CountAt(e.clock.Now())
}

// StreakMultiplier returns the streak factor the next kill would use
func (e *Engine) StreakMultiplier() float64 {
	return e.streakMultiplier(e.CurrentStreak())
}

// ComboMultiplier returns the combo factor the next kill would use
func (e *Engine) ComboMultiplier() float64 {
	return multiplier.Linear(e.CurrentCombo(), e.cfg.ComboStep, 0)
}

// Policy returns the policy multipliers
func (e *Engine) Policy() multiplier.Policy {
	return e.policy
}

// Achievements returns every achievement with its progress, in catalog order
func (e *Engine) Achievements() []achievement.Achievement {
	return e.achievements.All()
}

// AchievementProgress returns current/target for id, or 0 for unknown ids
func (e *Engine) AchievementProgress(id string) float64 {
	return e.achievements.GetProgress(id)
}

// DailyBonusAvailable reports whether ClaimDailyBonus would grant today
func (e *Engine) DailyBonusAvailable() bool {
	return e.daily.Available(e.clock.Today())
}

// PendingNotifications returns the number of undelivered notifications
func (e *Engine) PendingNotifications() int {
	return e.queue.Len()
}

// Snapshot returns a read-only view of the engine
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		PlayerID:            e.playerID,
		Stats:               e.Stats(),
		CurrentStreak:       e.CurrentStreak(),
		CurrentCombo:        e.CurrentCombo(),
		StreakMultiplier:    e.StreakMultiplier(),
		ComboMultiplier:     e.ComboMultiplier(),
		Policy:              e.policy,
		UnlockedCount:       e.achievements.UnlockedCount(),
		DailyBonusAvailable: e.DailyBonusAvailable(),
		LastDailyBonus:      e.daily.State().LastClaimedDate.String(),
		PendingEvents:       e.queue.Len(),
	}
	if sess, ok := e.CurrentSession(); ok {
		s.Session = &sess
	}
	return s
}

// Save captures the persisted state: statistics, streak and combo highs,
// the daily bonus date and achievement progress
func (e *Engine) Save() *persistence.Record {
	progress := e.achievements.Snapshot()
	achievements := make([]persistence.AchievementRecord, len(progress))
	for i, p := range progress {
		achievements[i] = persistence.AchievementRecord{ID: p.ID, CurrentValue: p.CurrentValue, Unlocked: p.Unlocked}
	}

	return &persistence.Record{
		SchemaVersion: persistence.SchemaVersion,
		SavedAt:       e.clock.Now(),
		Stats:         persistence.NewStatsRecord(e.ledger.Stats()),
		MaxStreak:     e.streak.MaxCount(),
		MaxCombo:      e.combo.MaxCount(),
		DailyBonus:    persistence.DailyBonusRecord{LastClaimedDate: e.daily.State().LastClaimedDate.String()},
		Achievements:  achievements,
	}
}

// Load replaces the persisted state with rec. A nil record restores
// defaults. Achievement ids absent from the catalog are ignored and catalog
// entries absent from the record keep their defaults. The new state is built
// in full before it replaces the current one, and nothing is granted.
func (e *Engine) Load(rec *persistence.Record) {
	l := ledger.New(e.credits, e.xp)
	st := streak.NewTracker(e.cfg.StreakWindow, e.cfg.Milestones)
	co := streak.NewComboTracker(e.cfg.ComboWindow, e.cfg.ComboStep)
	ach := achievement.NewTracker(e.catalog)
	daily := dailybonus.NewScheduler(e.cfg.DailyBonus)

	if rec != nil {
		stats := rec.Stats.LedgerStats().Sanitized()
		stats.MaxKillStreak = max(stats.MaxKillStreak, rec.MaxStreak)
		stats.MaxCombo = max(stats.MaxCombo, rec.MaxCombo)
		l.Restore(stats)
		st.RestoreMax(stats.MaxKillStreak)
		co.RestoreMax(stats.MaxCombo)

		progress := make([]achievement.Progress, len(rec.Achievements))
		for i, a := range rec.Achievements {
			progress[i] = achievement.Progress{ID: a.ID, CurrentValue: a.CurrentValue, Unlocked: a.Unlocked}
		}
		ach.Restore(progress)

		if date, err := rec.DailyBonus.LastClaimed(); err != nil {
			e.log.Warn(LogMsgRecordDateInvalid, "error", err)
		} else {
			daily.Restore(dailybonus.State{LastClaimedDate: date})
		}
	}

	e.ledger, e.streak, e.combo, e.achievements, e.daily = l, st, co, ach, daily
	e.log.Debug(LogMsgRecordLoaded, "defaults", rec == nil)
}

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/fragrewards/internal/achievement"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/persistence"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	e, clk, _ := newTestEngine(t, nil)

	e.StartSession()
	for i := 0; i < 6; i++ {
		kill(t, e, domain.KillElite)
	}
	e.RegisterDeath()
	e.CompleteMission(1.5)
	e.UpdateAchievementProgress(achievement.IDSharpshooter, 30)
	clk.Advance(5 * time.Minute)
	e.EndSession()

	saved := e.Save()
	data, err := persistence.Encode(saved)
	require.NoError(t, err)
	decoded, err := persistence.Decode(data)
	require.NoError(t, err)

	restored, _, _ := newTestEngine(t, nil)
	restored.Load(decoded)

	assert.Equal(t, e.Stats(), restored.Stats())
	assert.Equal(t, e.Achievements(), restored.Achievements())
	assert.Equal(t, e.MaxStreak(), restored.MaxStreak())
	assert.Equal(t, e.DailyBonusAvailable(), restored.DailyBonusAvailable())
	assert.Zero(t, restored.CurrentStreak(), "streaks are not persisted")

	again := restored.Save()
	again.SavedAt = saved.SavedAt
	assert.Equal(t, saved, again)
}

func TestLoad_GrantsNothing(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	e.UpdateAchievementProgress(achievement.IDSharpshooter, 50)
	rec := e.Save()

	restored, _, bus := newTestEngine(t, nil)
	restored.Load(rec)

	assert.Zero(t, restored.PendingNotifications())
	assert.Empty(t, bus.events)
	assert.Equal(t, 1, restored.Snapshot().UnlockedCount)
	assert.Equal(t, int64(400), restored.Stats().TotalCreditsEarned)

	assert.False(t, restored.UpdateAchievementProgress(achievement.IDSharpshooter, 60))
	assert.Equal(t, int64(400), restored.Stats().TotalCreditsEarned)
}

func TestLoad_Nil(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	kill(t, e, domain.KillBoss)

	e.Load(nil)

	assert.Zero(t, e.Stats())
	assert.Zero(t, e.MaxStreak())
	assert.True(t, e.DailyBonusAvailable())
}

func TestLoad_Tolerant(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	e.Load(&persistence.Record{
		SchemaVersion: persistence.SchemaVersion,
		Stats:         persistence.StatsRecord{TotalKills: 12, TotalCreditsEarned: -40, MaxKillStreak: 3},
		MaxStreak:     9,
		DailyBonus:    persistence.DailyBonusRecord{LastClaimedDate: "not-a-date"},
		Achievements: []persistence.AchievementRecord{
			{ID: "retired_achievement", CurrentValue: 5, Unlocked: true},
			{ID: achievement.IDCenturion, CurrentValue: 12},
		},
	})

	assert.Equal(t, int64(12), e.Stats().TotalKills)
	assert.Zero(t, e.Stats().TotalCreditsEarned)
	assert.Equal(t, 9, e.MaxStreak())
	assert.Equal(t, 9, e.Stats().MaxKillStreak)
	assert.True(t, e.DailyBonusAvailable())
	assert.InDelta(t, 0.12, e.AchievementProgress(achievement.IDCenturion), 1e-9)
	for _, a := range e.Achievements() {
		assert.False(t, a.Unlocked, a.ID)
	}
}

// Package engine orchestrates one player's reward and progression state.
//
// An Engine is single-threaded: every call runs to completion without
// blocking and without locks. Hosts serving many callers wrap each engine in
// exactly one mutex (see the player package).
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/fragrewards/internal/achievement"
	"github.com/osse101/fragrewards/internal/clock"
	"github.com/osse101/fragrewards/internal/dailybonus"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/event"
	"github.com/osse101/fragrewards/internal/ledger"
	"github.com/osse101/fragrewards/internal/logger"
	"github.com/osse101/fragrewards/internal/multiplier"
	"github.com/osse101/fragrewards/internal/streak"
)

// KillResult describes the effect of one kill
type KillResult struct {
	Kind        domain.KillKind `json:"kind"`
	Credits     int64           `json:"credits"`
	XP          int64           `json:"xp"`
	Multiplier  float64         `json:"multiplier"`
	StreakCount int             `json:"streak_count"`
	ComboCount  int             `json:"combo_count"`
	Milestones  []int           `json:"milestones,omitempty"`
	Unlocked    []string        `json:"unlocked,omitempty"`
}

// DeathResult describes the effect of a death
type DeathResult struct {
	LostStreak int `json:"lost_streak"`
	LostCombo  int `json:"lost_combo"`
}

// MissionResult describes the effect of a completed mission
type MissionResult struct {
	Credits  int64    `json:"credits"`
	XP       int64    `json:"xp"`
	Bonus    float64  `json:"bonus"`
	Unlocked []string `json:"unlocked,omitempty"`
}

// Engine is the reward orchestrator for one player
type Engine struct {
	cfg      Config
	playerID string
	clock    clock.Clock
	credits  ledger.CreditAccount
	xp       ledger.XPAccount
	catalog  []achievement.Definition
	bus      event.Publisher
	log      *slog.Logger

	policy       multiplier.Policy
	ledger       *ledger.Ledger
	streak       *streak.Tracker
	combo        *streak.ComboTracker
	achievements *achievement.Tracker
	daily        *dailybonus.Scheduler
	queue        *event.Queue
	session      *Session

	// ids unlocked since the last kill or mission result was built
	unlocked []string
}

// New creates an engine in its default state
func New(cfg Config, deps Dependencies) *Engine {
	cfg = cfg.withDefaults()

	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	if deps.Catalog == nil {
		deps.Catalog = achievement.DefaultCatalog().Achievements
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	if deps.PlayerID != "" {
		log = log.With(logger.AttrKeyPlayerID, deps.PlayerID)
	}

	e := &Engine{
		cfg:      cfg,
		playerID: deps.PlayerID,
		clock:    deps.Clock,
		credits:  deps.Credits,
		xp:       deps.XP,
		catalog:  deps.Catalog,
		bus:      deps.Bus,
		log:      log,
		policy:   cfg.Policy,
		queue:    event.NewQueue(cfg.QueueCapacity, deps.Overflow),
	}
	e.reset()
	return e
}

// reset installs default progression state
func (e *Engine) reset() {
	e.ledger = ledger.New(e.credits, e.xp)
	e.streak = streak.NewTracker(e.cfg.StreakWindow, e.cfg.Milestones)
	e.combo = streak.NewComboTracker(e.cfg.ComboWindow, e.cfg.ComboStep)
	e.achievements = achievement.NewTracker(e.catalog)
	e.daily = dailybonus.NewScheduler(e.cfg.DailyBonus)
}

// PlayerID returns the id the engine was constructed for
func (e *Engine) PlayerID() string {
	return e.playerID
}

// RegisterKill grants the scaled reward for a kill, then advances the
// streak and combo. The reward uses the streak and combo as they stood
// before this kill.
func (e *Engine) RegisterKill(kind domain.KillKind) (KillResult, error) {
	base, ok := e.cfg.Kills[kind]
	if !ok {
		return KillResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownKillKind, kind)
	}
	e.unlocked = nil
	now := e.clock.Now()
	e.decay(now)

	set := e.multipliers()
	res := KillResult{
		Kind:       kind,
		Credits:    set.Apply(base.Credits),
		XP:         set.Apply(base.XP),
		Multiplier: set.Total(),
	}
	e.grantCredits(res.Credits, domain.SourceKill)
	e.grantXP(res.XP, domain.SourceKill)
	e.evaluate(domain.MetricKills, e.ledger.RecordKill())

	res.Milestones = e.streak.RegisterEvent(now)
	res.StreakCount = e.streak.Count()
	e.ledger.ObserveStreak(res.StreakCount)

	change := e.combo.RegisterEvent(now)
	res.ComboCount = change.Count
	e.ledger.ObserveCombo(change.Count)
	e.notify(event.NewComboChangedEvent(e.playerID, change.Count, multiplier.Percent(change.Multiplier), now))

	for _, m := range res.Milestones {
		e.log.Info(LogMsgMilestoneReached, "milestone", m)
		e.notify(event.NewStreakMilestoneEvent(e.playerID, m, now))
		bonus := e.cfg.MilestoneReward.Times(int64(m))
		e.grantCredits(bonus.Credits, domain.SourceMilestone)
		e.grantXP(bonus.XP, domain.SourceMilestone)
	}

	e.evaluate(domain.MetricKillStreak, int64(res.StreakCount))
	e.evaluate(domain.MetricCombo, int64(res.ComboCount))

	res.Unlocked = e.takeUnlocked()
	e.log.Debug(LogMsgKillRegistered,
		"kind", kind.String(),
		"credits", res.Credits,
		"xp", res.XP,
		"multiplier", res.Multiplier,
		"streak", res.StreakCount,
		"combo", res.ComboCount)
	return res, nil
}

// RegisterDeath counts a death and resets the streak and combo. There is no
// monetary penalty.
func (e *Engine) RegisterDeath() DeathResult {
	now := e.clock.Now()
	e.decay(now)

	res := DeathResult{LostStreak: e.streak.Reset(), LostCombo: e.combo.Count()}
	if res.LostStreak > 0 {
		e.notify(event.NewStreakEndedEvent(e.playerID, res.LostStreak, EndReasonDeath, now))
	}
	if change, changed := e.combo.Reset(); changed {
		e.notify(event.NewComboChangedEvent(e.playerID, change.Count, multiplier.Percent(change.Multiplier), now))
	}
	e.evaluate(domain.MetricDeaths, e.ledger.RecordDeath())

	e.log.Debug(LogMsgDeathRegistered, "lost_streak", res.LostStreak, "lost_combo", res.LostCombo)
	return res
}

// CompleteMission grants the mission reward scaled by bonus. Bonuses below 1
// and NaN are treated as 1; bonuses above multiplier.MaxFactor are capped.
func (e *Engine) CompleteMission(bonus float64) MissionResult {
	e.unlocked = nil
	bonus = multiplier.Clamp(bonus, multiplier.Neutral)
	res := MissionResult{
		Credits: multiplier.Scale(e.cfg.Mission.Credits, bonus),
		XP:      multiplier.Scale(e.cfg.Mission.XP, bonus),
		Bonus:   bonus,
	}
	e.grantCredits(res.Credits, domain.SourceMission)
	e.grantXP(res.XP, domain.SourceMission)
	e.evaluate(domain.MetricMissionsCompleted, e.ledger.RecordMission())
	res.Unlocked = e.takeUnlocked()

	e.log.Info(LogMsgMissionCompleted, "credits", res.Credits, "xp", res.XP, "bonus", bonus)
	return res
}

// AddCredits grants credits directly. Non-positive amounts are ignored and
// report false.
func (e *Engine) AddCredits(amount int64) bool {
	return e.grantCredits(amount, domain.SourceManual)
}

// AddXP grants XP directly. Non-positive amounts are ignored and report false.
func (e *Engine) AddXP(amount int64) bool {
	return e.grantXP(amount, domain.SourceManual)
}

// ClaimDailyBonus grants the daily bonus if it has not been claimed on the
// clock's current calendar date
func (e *Engine) ClaimDailyBonus() (domain.BaseReward, bool) {
	today := e.clock.Today()
	bonus, ok := e.daily.Claim(today)
	if !ok {
		return domain.BaseReward{}, false
	}
	e.grantCredits(bonus.Credits, domain.SourceDailyBonus)
	e.grantXP(bonus.XP, domain.SourceDailyBonus)
	e.log.Info(LogMsgDailyBonusClaimed, "date", today.String(), "credits", bonus.Credits, "xp", bonus.XP)
	return bonus, true
}

// UpdateAchievementProgress sets an achievement's progress to an absolute
// value and grants its reward if this unlocks it. Unknown ids and unlocked
// achievements are ignored. It reports whether an unlock happened.
func (e *Engine) UpdateAchievementProgress(id string, value int64) bool {
	a, ok := e.achievements.UpdateProgress(id, value)
	if ok {
		e.unlock(a)
	}
	return ok
}

// SetMultipliers replaces the policy multipliers. Floors are enforced.
func (e *Engine) SetMultipliers(difficulty, eventFactor, vip float64) multiplier.Policy {
	e.policy = multiplier.Policy{Difficulty: difficulty, Event: eventFactor, VIP: vip}.Normalized()
	e.log.Info(LogMsgMultipliersUpdated,
		"difficulty", e.policy.Difficulty,
		"event", e.policy.Event,
		"vip", e.policy.VIP)
	return e.policy
}

// Tick applies streak and combo timeouts at now, accrues session play time
// and drains queued notifications to the bus. A publish failure leaves the
// remaining notifications queued and is returned; it is never fatal.
func (e *Engine) Tick(ctx context.Context, now time.Time) error {
	e.decay(now)
	e.accrue(now)
	_, err := e.Flush(ctx)
	return err
}

// Flush drains queued notifications to the bus in order
func (e *Engine) Flush(ctx context.Context) (int, error) {
	n, err := e.queue.Drain(ctx, e.bus)
	if err != nil {
		e.log.Warn(LogMsgNotificationsPending, "pending", e.queue.Len(), "error", err)
	}
	return n, err
}

// decay applies timeouts observed at now
func (e *Engine) decay(now time.Time) {
	if lost, ended := e.streak.Tick(now); ended {
		e.log.Debug(LogMsgStreakEnded, "lost", lost)
		e.notify(event.NewStreakEndedEvent(e.playerID, lost, EndReasonTimeout, now))
	}
	if change, changed := e.combo.Tick(now); changed {
		e.notify(event.NewComboChangedEvent(e.playerID, change.Count, multiplier.Percent(change.Multiplier), now))
	}
}

func (e *Engine) multipliers() multiplier.Set {
	return e.policy.With(e.streakMultiplier(e.streak.Count()), e.combo.Multiplier())
}

func (e *Engine) streakMultiplier(count int) float64 {
	return multiplier.Linear(count, e.cfg.StreakStep, e.cfg.StreakCap)
}

func (e *Engine) grantCredits(amount int64, source domain.RewardSource) bool {
	g, ok := e.ledger.AddCredits(amount, source)
	if !ok {
		return false
	}
	e.notify(event.NewRewardGrantedEvent(e.playerID, g.Kind, g.Amount, g.Source, e.clock.Now()))
	e.evaluate(domain.MetricCreditsEarned, e.ledger.Stats().TotalCreditsEarned)
	return true
}

func (e *Engine) grantXP(amount int64, source domain.RewardSource) bool {
	g, ok := e.ledger.AddXP(amount, source)
	if !ok {
		return false
	}
	e.notify(event.NewRewardGrantedEvent(e.playerID, g.Kind, g.Amount, g.Source, e.clock.Now()))
	e.evaluate(domain.MetricXPEarned, e.ledger.Stats().TotalXPEarned)
	return true
}

func (e *Engine) evaluate(metric domain.Metric, value int64) {
	for _, a := range e.achievements.Evaluate(metric, value) {
		e.unlock(a)
	}
}

// unlock grants an achievement's reward. It is only called on the single
// locked-to-unlocked transition reported by the tracker.
func (e *Engine) unlock(a achievement.Achievement) {
	e.unlocked = append(e.unlocked, a.ID)
	e.log.Info(LogMsgAchievementUnlocked, "achievement", a.ID)
	e.notify(event.NewAchievementUnlockedEvent(e.playerID, a.ID, a.DisplayName(), a.RewardCredits, a.RewardXP, e.clock.Now()))
	e.grantCredits(a.RewardCredits, domain.SourceAchievement)
	e.grantXP(a.RewardXP, domain.SourceAchievement)
}

func (e *Engine) takeUnlocked() []string {
	out := e.unlocked
	e.unlocked = nil
	return out
}

func (e *Engine) notify(ev event.Event) {
	e.queue.Push(ev)
}

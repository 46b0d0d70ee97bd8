package engine

import (
	"log/slog"
	"maps"
	"time"

	"github.com/osse101/fragrewards/internal/achievement"
	"github.com/osse101/fragrewards/internal/clock"
	"github.com/osse101/fragrewards/internal/dailybonus"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/event"
	"github.com/osse101/fragrewards/internal/ledger"
	"github.com/osse101/fragrewards/internal/multiplier"
	"github.com/osse101/fragrewards/internal/streak"
)

// KillTable maps each kill kind to its unscaled reward
type KillTable map[domain.KillKind]domain.BaseReward

// NewKillTable builds a table from the three independent kinds. Headshot and
// Multikill are fixed multiples of Standard.
func NewKillTable(standard, elite, boss domain.BaseReward) KillTable {
	return KillTable{
		domain.KillStandard:  standard,
		domain.KillElite:     elite,
		domain.KillBoss:      boss,
		domain.KillHeadshot:  standard.Times(HeadshotFactor),
		domain.KillMultikill: standard.Times(MultikillFactor),
	}
}

// DefaultKillTable returns the compiled-in kill rewards
func DefaultKillTable() KillTable {
	return NewKillTable(
		domain.BaseReward{Credits: DefaultStandardCredits, XP: DefaultStandardXP},
		domain.BaseReward{Credits: DefaultEliteCredits, XP: DefaultEliteXP},
		domain.BaseReward{Credits: DefaultBossCredits, XP: DefaultBossXP},
	)
}

// Config is the reward tuning fixed at construction
type Config struct {
	Kills           KillTable
	StreakWindow    time.Duration
	StreakStep      float64
	StreakCap       float64
	Milestones      []int
	MilestoneReward domain.BaseReward // per streak count reached
	ComboWindow     time.Duration
	ComboStep       float64
	Mission         domain.BaseReward
	DailyBonus      domain.BaseReward
	Policy          multiplier.Policy
	QueueCapacity   int
}

// DefaultConfig returns the compiled-in tuning
func DefaultConfig() Config {
	return Config{
		Kills:           DefaultKillTable(),
		StreakWindow:    streak.DefaultStreakWindow,
		StreakStep:      streak.DefaultStreakStep,
		StreakCap:       streak.DefaultStreakCap,
		Milestones:      streak.DefaultMilestones(),
		MilestoneReward: domain.BaseReward{Credits: DefaultMilestoneCreditsPer, XP: DefaultMilestoneXPPer},
		ComboWindow:     streak.DefaultComboWindow,
		ComboStep:       streak.DefaultComboStep,
		Mission:         domain.BaseReward{Credits: DefaultMissionCredits, XP: DefaultMissionXP},
		DailyBonus:      domain.BaseReward{Credits: dailybonus.DefaultCredits, XP: dailybonus.DefaultXP},
		Policy:          multiplier.DefaultPolicy(),
		QueueCapacity:   event.DefaultQueueCapacity,
	}
}

// withDefaults fills zero fields from DefaultConfig
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if len(c.Kills) == 0 {
		c.Kills = d.Kills
	} else {
		c.Kills = maps.Clone(c.Kills)
	}
	if c.StreakWindow <= 0 {
		c.StreakWindow = d.StreakWindow
	}
	if c.StreakStep <= 0 {
		c.StreakStep = d.StreakStep
	}
	if c.StreakCap <= 0 {
		c.StreakCap = d.StreakCap
	}
	if c.Milestones == nil {
		c.Milestones = d.Milestones
	}
	if c.MilestoneReward == (domain.BaseReward{}) {
		c.MilestoneReward = d.MilestoneReward
	}
	if c.ComboWindow <= 0 {
		c.ComboWindow = d.ComboWindow
	}
	if c.ComboStep <= 0 {
		c.ComboStep = d.ComboStep
	}
	if c.Mission == (domain.BaseReward{}) {
		c.Mission = d.Mission
	}
	if c.DailyBonus == (domain.BaseReward{}) {
		c.DailyBonus = d.DailyBonus
	}
	if c.Policy == (multiplier.Policy{}) {
		c.Policy = d.Policy
	}
	c.Policy = c.Policy.Normalized()
	return c
}

// Dependencies are the collaborators an engine is constructed with. Every
// field is optional.
type Dependencies struct {
	PlayerID string
	Clock    clock.Clock
	Credits  ledger.CreditAccount
	XP       ledger.XPAccount
	Catalog  []achievement.Definition // nil uses the default catalog
	Bus      event.Publisher
	Overflow event.OverflowFunc
	Logger   *slog.Logger
}

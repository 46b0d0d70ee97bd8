package achievement

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/fragrewards/internal/domain"
)

// Definition is the static, never-persisted part of an achievement
type Definition struct {
	ID            string        `json:"id" validate:"required,max=64"`
	Name          string        `json:"name,omitempty" validate:"max=100"`
	Description   string        `json:"description,omitempty"`
	Metric        domain.Metric `json:"metric,omitempty" validate:"omitempty,oneof=kills deaths credits_earned xp_earned missions_completed kill_streak combo"`
	Target        int64         `json:"target" validate:"gt=0"`
	RewardCredits int64         `json:"reward_credits" validate:"gte=0"`
	RewardXP      int64         `json:"reward_xp" validate:"gte=0"`
}

// DisplayName returns Name, or a title-cased form of ID when Name is empty
func (d Definition) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(d.ID, "_", " "))
}

// Catalog is the declarative achievement table loaded once at startup
type Catalog struct {
	Version      string       `json:"version" validate:"required"`
	Description  string       `json:"description,omitempty"`
	Achievements []Definition `json:"achievements" validate:"dive"`
}

// DefaultCatalog returns the compiled-in achievement table
func DefaultCatalog() *Catalog {
	return &Catalog{
		Version:     DefaultCatalogVer,
		Description: "Built-in achievements",
		Achievements: []Definition{
			{ID: IDKillingSpree, Description: "Reach a 5 kill streak", Metric: domain.MetricKillStreak, Target: 5, RewardCredits: 250, RewardXP: 100},
			{ID: IDRampage, Description: "Reach a 10 kill streak", Metric: domain.MetricKillStreak, Target: 10, RewardCredits: 500, RewardXP: 200},
			{ID: IDUnstoppable, Description: "Reach a 20 kill streak", Metric: domain.MetricKillStreak, Target: 20, RewardCredits: 1000, RewardXP: 400},
			{ID: IDGodlike, Description: "Reach a 50 kill streak", Metric: domain.MetricKillStreak, Target: 50, RewardCredits: 2500, RewardXP: 1000},
			{ID: IDComboMaster, Description: "Chain a 10 hit combo", Metric: domain.MetricCombo, Target: 10, RewardCredits: 300, RewardXP: 150},
			{ID: IDCenturion, Description: "Get 100 kills", Metric: domain.MetricKills, Target: 100, RewardCredits: 1000, RewardXP: 500},
			{ID: IDExecutioner, Description: "Get 1000 kills", Metric: domain.MetricKills, Target: 1000, RewardCredits: 5000, RewardXP: 2500},
			{ID: IDMissionRunner, Description: "Complete 10 missions", Metric: domain.MetricMissionsCompleted, Target: 10, RewardCredits: 750, RewardXP: 300},
			{ID: IDWarChest, Description: "Earn 100000 credits", Metric: domain.MetricCreditsEarned, Target: 100000, RewardCredits: 5000},
			{ID: IDVeteran, Description: "Earn 50000 XP", Metric: domain.MetricXPEarned, Target: 50000, RewardXP: 2500},
			{ID: IDTenacious, Description: "Die 100 times and keep playing", Metric: domain.MetricDeaths, Target: 100, RewardCredits: 200, RewardXP: 100},
			{ID: IDSharpshooter, Name: "Sharpshooter", Description: "Land 50 long-range headshots", Target: 50, RewardCredits: 400, RewardXP: 200},
		},
	}
}

package domain

// RewardKind identifies the account a grant is credited to
type RewardKind string

const (
	RewardCredits RewardKind = "credits"
	RewardXP      RewardKind = "xp"
)

// RewardSource identifies why a grant was made
type RewardSource string

const (
	SourceKill        RewardSource = "kill"
	SourceMilestone   RewardSource = "streak_milestone"
	SourceMission     RewardSource = "mission"
	SourceAchievement RewardSource = "achievement"
	SourceDailyBonus  RewardSource = "daily_bonus"
	SourceManual      RewardSource = "manual"
)

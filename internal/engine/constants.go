package engine

// Default reward table
const (
	DefaultStandardCredits int64 = 50
	DefaultStandardXP      int64 = 25
	DefaultEliteCredits    int64 = 150
	DefaultEliteXP         int64 = 75
	DefaultBossCredits     int64 = 500
	DefaultBossXP          int64 = 250

	HeadshotFactor  int64 = 2
	MultikillFactor int64 = 3

	DefaultMissionCredits int64 = 500
	DefaultMissionXP      int64 = 250

	// Milestone bonus per streak count reached
	DefaultMilestoneCreditsPer int64 = 10
	DefaultMilestoneXPPer      int64 = 5
)

// Streak end reasons
const (
	EndReasonTimeout = "timeout"
	EndReasonDeath   = "death"
)

// Log messages
const (
	LogMsgKillRegistered       = "Kill registered"
	LogMsgDeathRegistered      = "Death registered"
	LogMsgMissionCompleted     = "Mission completed"
	LogMsgAchievementUnlocked  = "Achievement unlocked"
	LogMsgMilestoneReached     = "Streak milestone reached"
	LogMsgStreakEnded          = "Streak ended"
	LogMsgDailyBonusClaimed    = "Daily bonus claimed"
	LogMsgSessionStarted       = "Session started"
	LogMsgSessionEnded         = "Session ended"
	LogMsgRecordLoaded         = "Player record loaded"
	LogMsgRecordDateInvalid    = "Ignoring invalid daily bonus date in record"
	LogMsgMultipliersUpdated   = "Policy multipliers updated"
	LogMsgNotificationsPending = "Notifications left queued"
)

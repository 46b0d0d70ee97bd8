package discord

import "time"

// Embed colours
const (
	ColorMilestone   = 0xe67e22 // Orange
	ColorAchievement = 0xf1c40f // Gold
)

// Embed text
const (
	TitleMilestone       = "🔥 Streak milestone"
	TitleAchievement     = "🏆 Achievement unlocked"
	DescMilestoneFormat  = "**%s** reached a %d kill streak!"
	DescAchievementFmt   = "**%s** unlocked **%s**"
	FooterRewardsFormat  = "+%d credits · +%d XP"
	WebhookUsername      = "Frag Rewards"
	webhookURLPathPrefix = "/api/webhooks/"
)

// Sender defaults
const (
	DefaultQueueSize   = 64
	DefaultSendTimeout = 10 * time.Second
)

// Log messages
const (
	LogMsgWebhookQueueFull = "Discord webhook queue full, dropping message"
	LogMsgWebhookFailed    = "Discord webhook delivery failed"
	LogMsgWebhookStopped   = "Discord webhook notifier stopped"
)

// Error messages
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
)

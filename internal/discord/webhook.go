package discord

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/fragrewards/internal/achievement"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/logger"
)

// WebhookSender executes a Discord webhook. *discordgo.Session satisfies it.
type WebhookSender interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ParseWebhookURL extracts the webhook id and token from a webhook URL of
// the form https://discord.com/api/webhooks/{id}/{token}
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", ErrMsgInvalidWebhookURL, err)
	}
	rest, ok := strings.CutPrefix(u.Path, webhookURLPathPrefix)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidWebhookURL)
	}
	id, token, ok = strings.Cut(strings.Trim(rest, "/"), "/")
	if !ok || id == "" || token == "" || strings.Contains(token, "/") {
		return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidWebhookURL)
	}
	return id, token, nil
}

// WebhookNotifier posts streak milestones and achievement unlocks to a
// Discord channel webhook. Notifications are queued and sent from a single
// goroutine so bus handlers never wait on Discord.
type WebhookNotifier struct {
	sender  WebhookSender
	id      string
	token   string
	catalog map[string]achievement.Definition

	queue chan *discordgo.WebhookParams
	wg    sync.WaitGroup
	once  sync.Once
}

// NewWebhookNotifier creates a notifier posting to the webhook id/token.
// catalog supplies achievement names and rewards for the embeds.
func NewWebhookNotifier(sender WebhookSender, id, token string, catalog []achievement.Definition, queueSize int) *WebhookNotifier {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	byID := make(map[string]achievement.Definition, len(catalog))
	for _, d := range catalog {
		byID[d.ID] = d
	}
	return &WebhookNotifier{
		sender:  sender,
		id:      id,
		token:   token,
		catalog: byID,
		queue:   make(chan *discordgo.WebhookParams, queueSize),
	}
}

// Start runs the sender goroutine until Stop
func (n *WebhookNotifier) Start(ctx context.Context) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		log := logger.FromContext(ctx)
		for params := range n.queue {
			if _, err := n.sender.WebhookExecute(n.id, n.token, false, params); err != nil {
				log.Warn(LogMsgWebhookFailed, "error", err)
			}
		}
		log.Info(LogMsgWebhookStopped)
	}()
}

// Stop sends what is already queued and waits for the sender to exit
func (n *WebhookNotifier) Stop() {
	n.once.Do(func() { close(n.queue) })
	n.wg.Wait()
}

// OnRewardGranted implements event.Notifier; grants are not posted
func (n *WebhookNotifier) OnRewardGranted(context.Context, string, domain.RewardKind, int64) {}

// OnComboChanged implements event.Notifier; combos are not posted
func (n *WebhookNotifier) OnComboChanged(context.Context, string, int, int) {}

// OnStreakMilestone implements event.Notifier
func (n *WebhookNotifier) OnStreakMilestone(ctx context.Context, playerID string, milestone int) {
	n.enqueue(ctx, &discordgo.MessageEmbed{
		Title:       TitleMilestone,
		Description: fmt.Sprintf(DescMilestoneFormat, playerID, milestone),
		Color:       ColorMilestone,
	})
}

// OnAchievementUnlocked implements event.Notifier
func (n *WebhookNotifier) OnAchievementUnlocked(ctx context.Context, playerID, achievementID string) {
	embed := &discordgo.MessageEmbed{
		Title:       TitleAchievement,
		Description: fmt.Sprintf(DescAchievementFmt, playerID, achievementID),
		Color:       ColorAchievement,
	}
	if def, ok := n.catalog[achievementID]; ok {
		embed.Description = fmt.Sprintf(DescAchievementFmt, playerID, def.DisplayName())
		if def.Description != "" {
			embed.Fields = []*discordgo.MessageEmbedField{{Name: def.DisplayName(), Value: def.Description}}
		}
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf(FooterRewardsFormat, def.RewardCredits, def.RewardXP)}
	}
	n.enqueue(ctx, embed)
}

func (n *WebhookNotifier) enqueue(ctx context.Context, embed *discordgo.MessageEmbed) {
	params := &discordgo.WebhookParams{
		Username: WebhookUsername,
		Embeds:   []*discordgo.MessageEmbed{embed},
	}
	select {
	case n.queue <- params:
	default:
		logger.FromContext(ctx).Warn(LogMsgWebhookQueueFull, "title", embed.Title)
	}
}

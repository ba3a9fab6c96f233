package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"automaid/autoclear"
	"automaid/bot"
)

// requiredPermissions are the channel permissions the bot itself needs
// before any message in the channel is evaluated. The check runs once per
// message and a failed check short-circuits the whole pipeline.
const requiredPermissions = discordgo.PermissionManageMessages |
	discordgo.PermissionManageWebhooks

// MessageCreateHandler evaluates every incoming guild message against the
// channel's autoclear rules and queues a deferred deletion when one applies.
func MessageCreateHandler(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		// Rules are guild-scoped; DMs never match.
		if m.GuildID == "" || m.Author == nil {
			return
		}

		perms, err := s.UserChannelPermissions(s.State.User.ID, m.ChannelID)
		if err != nil {
			log.Printf("Error checking permissions in channel %s: %v", m.ChannelID, err)
			return
		}
		if perms&requiredPermissions != requiredPermissions {
			// Standing configuration issue, not a per-message fault; skip silently.
			return
		}

		msg := autoclear.Message{
			ChannelID:    m.ChannelID,
			MessageID:    m.ID,
			AuthorID:     m.Author.ID,
			AuthorIsBot:  m.Author.Bot,
			AuthorIsSelf: m.Author.ID == s.State.User.ID,
			Content:      m.Content,
			CreatedAt:    m.Timestamp,
		}

		// Webhook-authored messages are attributed to the webhook's owning
		// user. If the owner can't be resolved the author stays unknown and
		// the message is not evaluated.
		if m.WebhookID != "" {
			webhook, err := s.Webhook(m.WebhookID)
			if err != nil || webhook.User == nil {
				log.Printf("Could not resolve owner of webhook %s, skipping message %s", m.WebhookID, m.ID)
				return
			}
			msg.AuthorID = webhook.User.ID
			msg.AuthorIsBot = webhook.User.Bot
			msg.AuthorIsSelf = webhook.User.ID == s.State.User.ID
		}

		job, err := b.Service.Evaluate(msg)
		if err != nil {
			log.Printf("Error evaluating message %s in channel %s: %v", m.ID, m.ChannelID, err)
			return
		}
		if job != nil {
			log.Printf("Scheduled deletion of message %s in channel %s at %d", job.MessageID, job.ChannelID, job.FireAt)
		}
	}
}

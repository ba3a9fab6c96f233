package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"automaid/bot"
)

// ChannelPinsUpdateHandler retracts queued deletions for messages that have
// been pinned. A pinned message is presumed intentionally preserved, so its
// job is cancelled regardless of how much of the timeout has elapsed.
func ChannelPinsUpdateHandler(b *bot.Bot) func(s *discordgo.Session, p *discordgo.ChannelPinsUpdate) {
	return func(s *discordgo.Session, p *discordgo.ChannelPinsUpdate) {
		pinned, err := s.ChannelMessagesPinned(p.ChannelID)
		if err != nil {
			log.Printf("Error fetching pinned messages for channel %s: %v", p.ChannelID, err)
			return
		}

		ids := make([]string, 0, len(pinned))
		for _, msg := range pinned {
			ids = append(ids, msg.ID)
		}

		if err := b.Service.RetractPinned(p.ChannelID, ids); err != nil {
			log.Printf("Error retracting jobs for pinned messages in channel %s: %v", p.ChannelID, err)
			return
		}
		if len(ids) > 0 {
			log.Printf("Retracted queued deletions for %d pinned messages in channel %s", len(ids), p.ChannelID)
		}
	}
}

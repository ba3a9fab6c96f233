package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"automaid/bot"
)

// Register all handlers to the bot.
func Register(b *bot.Bot) {
	b.Session.AddHandler(InteractionCreate(b))
	b.Session.AddHandler(MessageCreateHandler(b))
	b.Session.AddHandler(ChannelPinsUpdateHandler(b))

	// Log and set presence once the gateway connection is ready.
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		if err := s.UpdateGameStatus(0, "/help"); err != nil {
			log.Printf("Error setting presence: %v", err)
		}
	})
}

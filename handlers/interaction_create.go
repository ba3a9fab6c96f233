package handlers

import (
	"github.com/bwmarrin/discordgo"

	"automaid/bot"
)

// InteractionCreate handles slash command interactions.
func InteractionCreate(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		switch i.ApplicationCommandData().Name {
		case "autoclear":
			HandleAutoclear(b, s, i)
		case "purge":
			HandlePurge(b, s, i)
		case "clear":
			HandleClear(b, s, i)
		case "help":
			HandleHelp(s, i)
		case "info":
			HandleInfo(s, i)
		}
	}
}

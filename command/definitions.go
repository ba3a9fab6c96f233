package command

import "github.com/bwmarrin/discordgo"

// AutoclearCommand defines the structure for the /autoclear command.
type AutoclearCommand struct{}

// Definition returns the application command definition.
func (c *AutoclearCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "autoclear",
		Description: "Manage autoclear rules for this channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "start",
				Description: "Start autoclearing this channel",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "users",
						Description: "User mentions the rule applies to (all users if omitted)",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    false,
					},
					{
						Name:        "timeout",
						Description: "Seconds messages should remain for (default 10)",
						Type:        discordgo.ApplicationCommandOptionInteger,
						Required:    false,
					},
					{
						Name:        "message",
						Description: "Notice to post when a message is deleted",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    false,
					},
					{
						Name:        "regex",
						Description: "Only delete messages matching this pattern (max 64 chars)",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    false,
					},
				},
			},
			{
				Name:        "stop",
				Description: "Cancel autoclearing on this channel",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "users",
						Description: "User mentions to cancel autoclearing for (all users if omitted)",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    false,
					},
				},
			},
			{
				Name:        "rules",
				Description: "Show the autoclear rules for a channel",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "channel",
						Description: "Channel to view rules of (defaults to current)",
						Type:        discordgo.ApplicationCommandOptionChannel,
						Required:    false,
					},
				},
			},
		},
	}
}

// PurgeCommand defines the structure for the /purge command.
type PurgeCommand struct{}

// Definition returns the application command definition.
func (c *PurgeCommand) Definition() *discordgo.ApplicationCommand {
	var minCount float64 = 1
	return &discordgo.ApplicationCommand{
		Name:        "purge",
		Description: "Delete recent message history in this channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "limit",
				Description: "Number of messages to delete (max 100)",
				Type:        discordgo.ApplicationCommandOptionInteger,
				Required:    true,
				MinValue:    &minCount,
				MaxValue:    100,
			},
		},
	}
}

// ClearCommand defines the structure for the /clear command.
type ClearCommand struct{}

// Definition returns the application command definition.
func (c *ClearCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "clear",
		Description: "Delete recent message history of a specific user",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "user",
				Description: "User to clear history of",
				Type:        discordgo.ApplicationCommandOptionUser,
				Required:    true,
			},
		},
	}
}

// HelpCommand defines the structure for the /help command.
type HelpCommand struct{}

// Definition returns the application command definition.
func (c *HelpCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "Show usage help",
	}
}

// InfoCommand defines the structure for the /info command.
type InfoCommand struct{}

// Definition returns the application command definition.
func (c *InfoCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "info",
		Description: "Show bot info and invite link",
	}
}

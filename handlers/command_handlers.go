package handlers

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"

	"automaid/autoclear"
	"automaid/bot"
	"automaid/utils"
)

var mentionPattern = regexp.MustCompile(`<@!?(\d+)>`)

// parseMentions extracts user IDs from raw user mentions in an option value.
func parseMentions(value string) []string {
	var ids []string
	for _, match := range mentionPattern.FindAllStringSubmatch(value, -1) {
		ids = append(ids, match[1])
	}
	return ids
}

// respond sends an ephemeral reply to an interaction.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error responding to interaction: %v", err)
	}
}

// HandleAutoclear handles the logic for the /autoclear command.
func HandleAutoclear(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.Auth.CanManageRules(i) {
		respond(s, i, "You must be able to manage messages to perform this command.")
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		optionMap[opt.Name] = opt
	}

	switch sub.Name {
	case "start":
		handleStart(b, s, i, optionMap)
	case "stop":
		handleStop(b, s, i, optionMap)
	case "rules":
		handleRules(b, s, i, optionMap)
	}
}

func handleStart(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	opts := autoclear.StartOptions{
		ChannelID:      i.ChannelID,
		TimeoutSeconds: autoclear.DefaultTimeoutSeconds,
	}
	if opt, ok := optionMap["users"]; ok {
		opts.UserIDs = parseMentions(opt.StringValue())
	}
	if opt, ok := optionMap["timeout"]; ok {
		opts.TimeoutSeconds = opt.IntValue()
	}
	if opt, ok := optionMap["message"]; ok {
		opts.Notice = opt.StringValue()
	}
	if opt, ok := optionMap["regex"]; ok {
		opts.Pattern = opt.StringValue()
	}

	if err := b.Service.Start(opts); err != nil {
		respond(s, i, fmt.Sprintf("Could not start autoclear: %v", err))
		return
	}

	utils.Info("autoclear", "start", fmt.Sprintf("Rules updated for channel %s by %s", i.ChannelID, i.Member.User.ID))
	if len(opts.UserIDs) == 0 {
		respond(s, i, fmt.Sprintf("Autoclearing this channel: messages are deleted after %d seconds.", opts.TimeoutSeconds))
	} else {
		respond(s, i, fmt.Sprintf("Autoclearing %d users in this channel: messages are deleted after %d seconds.", len(opts.UserIDs), opts.TimeoutSeconds))
	}
}

func handleStop(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	var userIDs []string
	if opt, ok := optionMap["users"]; ok {
		userIDs = parseMentions(opt.StringValue())
	}

	if err := b.Service.Stop(i.ChannelID, userIDs); err != nil {
		respond(s, i, fmt.Sprintf("Could not stop autoclear: %v", err))
		return
	}

	utils.Info("autoclear", "stop", fmt.Sprintf("Rules removed for channel %s by %s", i.ChannelID, i.Member.User.ID))
	if len(userIDs) == 0 {
		respond(s, i, "Autoclearing cancelled for this channel.")
	} else {
		respond(s, i, fmt.Sprintf("Autoclearing cancelled for %d users in this channel.", len(userIDs)))
	}
}

func handleRules(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	channelID := i.ChannelID
	if opt, ok := optionMap["channel"]; ok {
		channelID = opt.ChannelValue(nil).ID
	}

	rules, err := b.Service.Rules(channelID)
	if err != nil {
		respond(s, i, "Could not load the rules for that channel.")
		return
	}
	if len(rules) == 0 {
		respond(s, i, fmt.Sprintf("No autoclear rules are set for <#%s>.", channelID))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Autoclear rules for <#%s>:\n", channelID)
	for _, rule := range rules {
		if rule.Global() {
			fmt.Fprintf(&sb, "• All users: delete after %d seconds", rule.TimeoutSeconds)
		} else {
			fmt.Fprintf(&sb, "• <@%s>: delete after %d seconds", rule.UserID, rule.TimeoutSeconds)
		}
		if rule.Pattern != "" {
			fmt.Fprintf(&sb, ", matching `%s`", rule.Pattern)
		}
		if rule.Notice != "" {
			sb.WriteString(", with notice")
		}
		sb.WriteString("\n")
	}
	respond(s, i, sb.String())
}

// HandlePurge handles the logic for the /purge command.
func HandlePurge(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.Auth.CanManageRules(i) {
		respond(s, i, "You must be able to manage messages to perform this command.")
		return
	}

	limit := 100
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "limit" {
			limit = int(opt.IntValue())
		}
	}

	messages, err := s.ChannelMessages(i.ChannelID, limit, "", "", "")
	if err != nil {
		respond(s, i, "Could not fetch the channel's message history.")
		return
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}
	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		log.Printf("Error bulk deleting %d messages in channel %s: %v", len(ids), i.ChannelID, err)
		respond(s, i, "Could not delete the messages.")
		return
	}

	respond(s, i, fmt.Sprintf("Deleted %d messages.", len(ids)))
}

// HandleClear handles the logic for the /clear command.
func HandleClear(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.Auth.CanManageRules(i) {
		respond(s, i, "You must be able to manage messages to perform this command.")
		return
	}

	var userID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			userID = opt.UserValue(nil).ID
		}
	}

	messages, err := s.ChannelMessages(i.ChannelID, 100, "", "", "")
	if err != nil {
		respond(s, i, "Could not fetch the channel's message history.")
		return
	}

	var ids []string
	for _, msg := range messages {
		if msg.Author != nil && msg.Author.ID == userID {
			ids = append(ids, msg.ID)
		}
	}
	if len(ids) == 0 {
		respond(s, i, "No recent messages by that user.")
		return
	}
	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		log.Printf("Error clearing %d messages of user %s in channel %s: %v", len(ids), userID, i.ChannelID, err)
		respond(s, i, "Could not delete the messages.")
		return
	}

	respond(s, i, fmt.Sprintf("Deleted %d messages by <@%s>.", len(ids), userID))
}

// HandleHelp handles the logic for the /help command.
func HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title: "Help",
		Description: "`/autoclear start` - Start autoclearing the current channel. Accepts arguments:\n" +
			"\t• User mentions (users the clear applies to - if no mentions, will do all users)\n" +
			"\t• Timeout (time in seconds that messages should remain for - defaults to 10s)\n" +
			"\t• Message (notice posted when a message is deleted)\n" +
			"\t• Regex (only delete messages matching a pattern)\n\n" +
			"`/autoclear stop` - Cancel autoclearing on the current channel. Accepts arguments:\n" +
			"\t• User mentions (users to cancel autoclearing for - if no mentions, will do all users)\n\n" +
			"`/autoclear rules` - Check the autoclear rules for specified channels. Accepts arguments:\n" +
			"\t• Channel mention (channel to view rules of - defaults to current)\n\n" +
			"`/clear` - Delete message history of a specific user.\n\n" +
			"`/purge` - Delete message history.",
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error responding to help command: %v", err)
	}
}

// HandleInfo handles the logic for the /info command.
func HandleInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title: "Info",
		Description: "Automaid keeps channels tidy by deleting messages a configurable " +
			"time after they are posted.\n\n" +
			"Invite me: https://discordapp.com/oauth2/authorize?client_id=474240839900725249&scope=bot&permissions=93264\n\n" +
			"Use `/help` for the command reference.",
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error responding to info command: %v", err)
	}
}

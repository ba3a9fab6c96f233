package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"automaid/autoclear"
	"automaid/command"
	"automaid/config"
	"automaid/database"
	"automaid/models"
	"automaid/utils"
)

// Bot encapsulates the bot's state.
type Bot struct {
	Session *discordgo.Session
	Store   *database.Store
	Service *autoclear.Autoclear
	Auth    *utils.Auth

	sweepInterval string
}

// NewBot creates and initializes a new Bot instance.
func NewBot() (*Bot, error) {
	config.LoadConfig()
	if err := utils.SetupFileLogging(); err != nil {
		return nil, fmt.Errorf("error setting up logging: %w", err)
	}

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	var autoclearConfig models.AutoclearConfig
	if err := viper.UnmarshalKey("autoclear", &autoclearConfig); err != nil {
		return nil, fmt.Errorf("error loading autoclear configuration: %w", err)
	}

	store, err := database.Open(autoclearConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	auth, err := utils.NewAuth()
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("error loading auth configuration: %w", err)
	}

	return &Bot{
		Session:       dg,
		Store:         store,
		Service:       autoclear.New(store, autoclearConfig.NoticeOnBots),
		Auth:          auth,
		sweepInterval: autoclearConfig.SweepInterval,
	}, nil
}

// Start opens the bot's session, registers handlers and slash commands, and
// launches the sweeper.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	err := b.Session.Open()
	if err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	utils.InitLogger(b.Session)

	// Register slash commands
	for _, def := range command.GetCommandDefinitions() {
		_, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, "", def)
		if err != nil {
			log.Printf("Cannot create '%v' command: %v", def.Name, err)
		}
	}

	startScheduler(b.Session, b.Store, b.sweepInterval)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session and the database.
func (b *Bot) Stop() {
	stopScheduler()
	if b.Session != nil {
		b.Session.Close()
	}
	if b.Store != nil {
		b.Store.Close()
	}
	fmt.Println("Bot stopped gracefully.")
}

// Run is the main entry point for the bot application.
func Run(registerHandlers func(*Bot)) {
	bot, err := NewBot()
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	if err := bot.Start(registerHandlers); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}

package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from the .env file, config.yaml, and the
// environment. Load order:
// 1. .env file (BOT_TOKEN and other secrets)
// 2. config.yaml (base configuration)
// Environment variables override same-named settings from the file.
func LoadConfig() {
	// Load environment variables from .env; a missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config") // config file name (no extension)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file is a normal deployment; env vars and defaults apply.
			log.Printf("No config.yaml found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}
}

func setDefaults() {
	viper.SetDefault("autoclear.database", "data/automaid.db")
	viper.SetDefault("autoclear.sweep_interval", "@every 5s")
	viper.SetDefault("autoclear.notice_on_bots", false)
	viper.SetDefault("logger.directory", "logs")
	viper.SetDefault("logger.rotation.max_size", 20)
	viper.SetDefault("logger.rotation.max_backups", 5)
	viper.SetDefault("logger.rotation.max_age", 14)
	viper.SetDefault("logger.rotation.compress", true)
}

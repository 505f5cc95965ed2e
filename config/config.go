package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultConfigFile = "json/bot.json"

// SocialLinks holds the optional link-button URLs shown under answer embeds.
// Empty entries produce no button.
type SocialLinks struct {
	YouTube   string `mapstructure:"youtube"`
	PlutoMall string `mapstructure:"plutomall"`
	Facebook  string `mapstructure:"facebook"`
}

// Config is built once at startup and passed by pointer to every component.
type Config struct {
	DiscordBotToken   string
	AdminRoleID       string      `mapstructure:"admin_role_id"`
	ResponseChannelID string      `mapstructure:"response_channel_id"`
	AdminChannelID    string      `mapstructure:"admin_channel_id"`
	ImageChannelID    string      `mapstructure:"designated_image_channel_id"`
	ThumbnailURL      string      `mapstructure:"thumbnail_url"`
	SocialLinks       SocialLinks `mapstructure:"social_links"`
	BotVersion        string      `mapstructure:"bot_version"`
	QAFile            string      `mapstructure:"qa_file"`
}

func Load() (*Config, error) {
	return LoadFrom(defaultConfigFile)
}

func LoadFrom(path string) (*Config, error) {
	// The token may come from a real environment variable instead of .env,
	// so a missing .env file is not an error by itself.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}

	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		return nil, errors.New("DISCORD_BOT_TOKEN is not set")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("bot_version", "dev")
	v.SetDefault("qa_file", "json/qa.json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	cfg.DiscordBotToken = token

	return cfg, nil
}

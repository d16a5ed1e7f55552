package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	BotToken       string
	DefaultChannel string
	UserID         string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != ""
	// Note: DefaultChannel and UserID are optional
}

type AppConfig struct {
	Environment string

	SlackConfig SlackConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Could not load .env file, continuing with system env vars")
	}

	botToken, err := getEnvRequired("SLACK_BOT_TOKEN")
	if err != nil {
		return nil, fmt.Errorf(
			"SLACK_BOT_TOKEN is required - create a Slack app at https://api.slack.com/apps and add a bot token: %w",
			err,
		)
	}

	config := &AppConfig{
		Environment: getEnvWithDefault("ENVIRONMENT", "dev"),

		SlackConfig: SlackConfig{
			BotToken:       botToken,
			DefaultChannel: os.Getenv("SLACK_DEFAULT_CHANNEL"),
			UserID:         os.Getenv("SLACK_USER_ID"),
		},
	}

	if config.SlackConfig.DefaultChannel == "" {
		log.Printf("⚠️ SLACK_DEFAULT_CHANNEL not set - every message must specify a channel")
	}
	if config.SlackConfig.UserID == "" {
		log.Printf("⚠️ SLACK_USER_ID not set - user mentions will be disabled")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

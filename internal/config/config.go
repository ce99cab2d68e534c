package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	// Optional env vars fall back to a default instead of failing.
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	tokenTTL, err := time.ParseDuration(getEnvOr("TOKEN_TTL", "24h"))
	if err != nil {
		log.Fatalf("Error: TOKEN_TTL is not a valid duration: %s", err)
	}

	cfg := Config{
		DBName:       getEnvOr("DB_NAME", ":memory:"),
		Port:         getEnv("PORT"),
		SeedDemoData: getEnvOr("SEED_DEMO_DATA", "true") == "true",
		Auth: AuthConfig{
			TokenSecret: getEnv("TOKEN_SECRET"),
			TokenTTL:    tokenTTL,
		},
		Slack: SlackConfig{
			Token:     getEnvOr("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvOr("SLACK_CHANNEL_ID", ""),
		},
	}
	return cfg
}

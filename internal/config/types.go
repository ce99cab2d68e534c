package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName       string
	Port         string
	SeedDemoData bool
	Auth         AuthConfig
	Slack        SlackConfig
}

// AuthConfig holds the settings for session token signing.
type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

// SlackConfig holds the optional Slack announcement settings.
// Announcements are disabled when Token is empty.
type SlackConfig struct {
	Token     string
	ChannelID string
}

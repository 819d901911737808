package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackAppID         string
	SlackConfigToken   string
	SlashCommand       string
	DatabasePath       string
	Port               string
	AdminUserIDs       []string
	Timezone           string
	PublishSchedule    string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackAppID:         getEnv("SLACK_APP_ID", ""),
		SlackConfigToken:   getEnv("SLACK_CONFIG_TOKEN", ""),
		SlashCommand:       getEnv("SLASH_COMMAND", "/timetable"),
		DatabasePath:       getEnv("DATABASE_PATH", "./timetable.db"),
		Port:               getEnv("PORT", "3000"),
		AdminUserIDs:       splitList(getEnv("ADMIN_USER_IDS", "")),
		Timezone:           getEnv("TIMEZONE", "Local"),
		PublishSchedule:    getEnv("PUBLISH_SCHEDULE", domain.DefaultPublishSchedule),
	}
}

// Location resolves Timezone, falling back to the host zone
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("Unknown timezone, using local time", "timezone", c.Timezone, "error", err)
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

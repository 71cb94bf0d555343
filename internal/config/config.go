package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultTrackedUsers is the compiled-in allow-list, used when
// TRACKED_USERS is not set.
var defaultTrackedUsers = []string{
	"David Perres",
	"Billy Gale",
}

// Config holds all configuration for the bot. Built once at startup and
// read-only afterwards.
type Config struct {
	DiscordToken             string   `env:"DISCORD_TOKEN"`
	SpreadsheetID            string   `env:"SPREADSHEET_ID"`
	ServiceAccountJSONBase64 string   `env:"SERVICE_ACCOUNT_JSON_BASE64"`
	SheetName                string   `env:"SHEET_NAME" envDefault:"BackLog"`
	TrackedUsers             []string `env:"TRACKED_USERS" envSeparator:","`
	Timezone                 string   `env:"TIMEZONE" envDefault:"Europe/Kyiv"`
	LogFile                  string   `env:"LOG_FILE" envDefault:"voice_logs.txt"`
	DatabaseDSN              string   `env:"DATABASE_DSN"`
}

// Load loads configuration from environment variables. Only the Discord
// token is required up front; spreadsheet settings may be absent and will
// surface as per-event failures instead.
func Load() (*Config, error) {
	// .env file is optional, continue with environment variables
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DiscordToken == "" {
		return nil, &ConfigError{Field: "DISCORD_TOKEN", Message: "DISCORD_TOKEN is required"}
	}

	var tracked []string
	for _, name := range cfg.TrackedUsers {
		if name != "" {
			tracked = append(tracked, name)
		}
	}
	cfg.TrackedUsers = tracked
	if len(cfg.TrackedUsers) == 0 {
		cfg.TrackedUsers = defaultTrackedUsers
	}

	return cfg, nil
}

// HasSheets reports whether enough configuration is present to even
// attempt remote spreadsheet writes.
func (c *Config) HasSheets() bool {
	return c.SpreadsheetID != "" && c.ServiceAccountJSONBase64 != ""
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

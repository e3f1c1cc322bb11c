package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEndpoint     = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultPollInterval = 600 * time.Second
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	Endpoint       string
	PollInterval   time.Duration
	LogLevel       string
	Environment    string
}

// Load reads configuration from environment variables and .env file (if present).
// The three credentials are read as-is: their presence is checked by
// CheckTokens at startup, so a missing token does not fail Load.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		var err error
		cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
	}

	cfg.Endpoint = os.Getenv("ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	cfg.PollInterval = defaultPollInterval
	if intervalStr := os.Getenv("POLL_INTERVAL_SECONDS"); intervalStr != "" {
		seconds, err := strconv.Atoi(intervalStr)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid POLL_INTERVAL_SECONDS: %q", intervalStr)
		}
		cfg.PollInterval = time.Duration(seconds) * time.Second
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// CheckTokens reports whether every credential the bot cannot run without is
// present: the Practicum API token, the bot token and the target chat ID.
func (c *AppConfig) CheckTokens() bool {
	return c.PracticumToken != "" && c.TelegramToken != "" && c.TelegramChatID != 0
}

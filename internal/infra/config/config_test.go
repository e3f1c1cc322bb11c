package config

import (
	"testing"
	"time"
)

func setAll(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "p-token")
	t.Setenv("TELEGRAM_TOKEN", "t-token")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")
	t.Setenv("ENDPOINT", "")
	t.Setenv("POLL_INTERVAL_SECONDS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setAll(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if cfg.Endpoint != defaultEndpoint {
		t.Errorf("Endpoint = %q, want default", cfg.Endpoint)
	}
	if cfg.PollInterval != 600*time.Second {
		t.Errorf("PollInterval = %v, want 600s", cfg.PollInterval)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" {
		t.Errorf("LogLevel/Environment = %q/%q, want info/development", cfg.LogLevel, cfg.Environment)
	}
	if cfg.TelegramChatID != 12345 {
		t.Errorf("TelegramChatID = %d, want 12345", cfg.TelegramChatID)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setAll(t)
	t.Setenv("POLL_INTERVAL_SECONDS", "30")
	t.Setenv("ENDPOINT", "http://localhost:8080/statuses")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.Endpoint != "http://localhost:8080/statuses" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad chat id", "TELEGRAM_CHAT_ID", "not-a-number"},
		{"bad interval", "POLL_INTERVAL_SECONDS", "soon"},
		{"zero interval", "POLL_INTERVAL_SECONDS", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setAll(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestCheckTokens(t *testing.T) {
	cases := []struct {
		name string
		cfg  AppConfig
		want bool
	}{
		{"all present", AppConfig{PracticumToken: "p", TelegramToken: "t", TelegramChatID: 1}, true},
		{"missing practicum token", AppConfig{TelegramToken: "t", TelegramChatID: 1}, false},
		{"missing telegram token", AppConfig{PracticumToken: "p", TelegramChatID: 1}, false},
		{"missing chat id", AppConfig{PracticumToken: "p", TelegramToken: "t"}, false},
		{"all missing", AppConfig{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.CheckTokens(); got != tc.want {
				t.Fatalf("CheckTokens() = %v, want %v", got, tc.want)
			}
		})
	}
}

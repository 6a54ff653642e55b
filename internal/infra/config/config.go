package config

import (
	"errors"
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// ErrConfig marks a missing or malformed setting. It is fatal at startup.
var ErrConfig = errors.New("invalid configuration")

const (
	defaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultTelegramAPIURL    = "https://api.telegram.org"
	defaultPollSchedule      = "@every 10m" // 600 seconds between cycles
	defaultHTTPTimeout       = 30 * time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    string
	PracticumEndpoint string
	TelegramAPIURL    string
	PollSchedule      string
	HTTPTimeout       time.Duration
	LogLevel          string
	Environment       string
	MetricsAddr       string // Empty disables the metrics endpoint
}

// Load reads configuration from environment variables and .env files (if present).
// With no arguments the .env file in the working directory is tried.
func Load(envFiles ...string) (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load(envFiles...)

	cfg := &AppConfig{
		PracticumToken: strings.TrimSpace(os.Getenv("PRACTICUM_TOKEN")),
		TelegramToken:  strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		TelegramChatID: strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
	}

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if cfg.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s not set", ErrConfig, strings.Join(missing, ", "))
	}

	cfg.PracticumEndpoint = getEnv("PRACTICUM_ENDPOINT", defaultPracticumEndpoint)
	cfg.TelegramAPIURL = getEnv("TELEGRAM_API_URL", defaultTelegramAPIURL)
	cfg.PollSchedule = getEnv("POLL_SCHEDULE", defaultPollSchedule)
	cfg.MetricsAddr = os.Getenv("METRICS_ADDR")

	cfg.HTTPTimeout = defaultHTTPTimeout
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: invalid HTTP_TIMEOUT %q", ErrConfig, raw)
		}
		cfg.HTTPTimeout = d
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

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

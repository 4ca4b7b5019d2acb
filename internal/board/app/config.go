package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Issuer       string        // Issuer claim for session tokens (default: guildnet-board)
	TokenSecret  string        // Required in prod: HS256 signing secret for session tokens
	TokenTTL     time.Duration // Session token lifetime (default: 24h)
	DatabaseFile string        // Path to SQLite database file (default: ./board.db)
	Categories   []string      // Categories seeded at startup (comma separated)

	SMTPAddr string // Optional: SMTP host:port; notifications are discarded when empty
	SMTPFrom string // Sender address for notification mail

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	DispatchInterval     time.Duration // Outbox poll interval (default: 5s)
	DispatchBatch        int           // Outbox rows claimed per poll (default: 50)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	OutboxRetention      time.Duration // Delivered notification retention (default: 24h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       getEnvOrDefault("BOARD_ISSUER", "guildnet-board"),
		TokenSecret:  os.Getenv("BOARD_TOKEN_SECRET"),
		TokenTTL:     getEnvDurationOrDefault("BOARD_TOKEN_TTL", 24*time.Hour),
		DatabaseFile: getEnvOrDefault("BOARD_DATABASE_FILE", "board.db"),

		SMTPAddr: os.Getenv("BOARD_SMTP_ADDR"), // Optional: noop mailer when unset
		SMTPFrom: getEnvOrDefault("BOARD_SMTP_FROM", "board@localhost"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		DispatchInterval:     getEnvDurationOrDefault("BOARD_DISPATCH_INTERVAL", 5*time.Second),
		DispatchBatch:        getEnvIntOrDefault("BOARD_DISPATCH_BATCH", 50),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		OutboxRetention:      getEnvDurationOrDefault("BOARD_OUTBOX_RETENTION", 24*time.Hour),
	}

	// Comma separated category names to seed at startup
	if raw := os.Getenv("BOARD_CATEGORIES"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Categories = append(cfg.Categories, name)
			}
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	WebhookURL      string
	Env             string
	NotifyQueueSize int
}

// LoadConfig reads .env file and returns a Config struct
func LoadConfig() *Config {
	// Try loading .env file (it might not exist in Production, which is fine)
	err := godotenv.Load()
	if err != nil {
		slog.Warn("No .env file found, relying on System Env Variables")
	}

	return &Config{
		Port:            getEnv("PORT", "3000"),
		WebhookURL:      getEnv("WEBHOOK_URL", ""),
		Env:             getEnv("ENV", "development"),
		NotifyQueueSize: getEnvInt("NOTIFY_QUEUE_SIZE", 256),
	}
}

// Helper to get env with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer env value, using fallback", "key", key, "value", value)
		return fallback
	}
	return n
}

package config

import (
	"log/slog"
	"os"
	"strconv"
)

// Config carries the environment-provided defaults for the CLI. Flags always
// win over these.
type Config struct {
	Env           string
	DefaultLength int
	DefaultCount  int
}

func Load() Config {
	return Config{
		Env:           getEnv("PASSFORGE_ENV", "development"),
		DefaultLength: getEnvInt("PASSFORGE_LENGTH", 12),
		DefaultCount:  getEnvInt("PASSFORGE_COUNT", 1),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		slog.Warn("ignoring invalid environment value", "key", key, "value", v)
		return fallback
	}
	return n
}

package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the demo settings. Values come from the environment (and an
// optional .env file) and are overridden by command-line flags.
type Config struct {
	Theme   string
	Width   int
	Height  int
	Format  string
	Frames  int
	Shaping bool

	Output  string
	PNG     string
	Tooltip int

	LogLevel string
	LogFile  string
}

// loadConfig reads SERIESDEMO_* variables. Missing .env files are not an
// error.
func loadConfig(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return Config{
		Theme:    getEnvOrDefault("SERIESDEMO_THEME", "default"),
		Width:    getEnvIntOrDefault("SERIESDEMO_WIDTH", 800),
		Height:   getEnvIntOrDefault("SERIESDEMO_HEIGHT", 600),
		Format:   strings.ToLower(getEnvOrDefault("SERIESDEMO_FORMAT", "json")),
		Frames:   getEnvIntOrDefault("SERIESDEMO_FRAMES", 2),
		Shaping:  getEnvBoolOrDefault("SERIESDEMO_SHAPING", false),
		Tooltip:  getEnvIntOrDefault("SERIESDEMO_TOOLTIP", -1),
		LogLevel: getEnvOrDefault("SERIESDEMO_LOG_LEVEL", "warn"),
		LogFile:  os.Getenv("SERIESDEMO_LOG_FILE"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

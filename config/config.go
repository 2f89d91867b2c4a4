// Package config resolves where settings live and how the tools log.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayugram/ayu-settings/settings"
)

// Config holds process configuration for the desktop app and the CLI.
type Config struct {
	// DataDir is the client working directory that holds tdata/.
	DataDir string
	// LogLevel is passed to go-log (debug, info, warn, error).
	LogLevel string
	// WatchDebounce is how long the file watcher waits for writes to settle.
	WatchDebounce time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		DataDir:       getEnv("AYU_DATA_DIR", "."),
		LogLevel:      strings.ToLower(getEnv("AYU_LOG_LEVEL", "error")),
		WatchDebounce: getEnvDuration("AYU_WATCH_DEBOUNCE", settings.DefaultDebounce),
	}
}

// SettingsPath returns the settings file inside DataDir.
func (c Config) SettingsPath() string {
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, filepath.FromSlash(settings.DefaultFilename))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings are process-level knobs read from the environment.
// The persisted per-service configuration lives in File.
type Settings struct {
	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ConfigPath string // optional override of the config file location
	Editor     string // program used by "config edit"
}

func LoadSettings() *Settings {
	return &Settings{
		// Logging
		LogLevel:  strings.ToLower(getenv("KCLI_LOG_LEVEL", "info")),
		PrettyLog: mustBool("KCLI_PRETTY_LOG", true),

		// Files
		ConfigPath: getenv("KCLI_CONFIG", ""),
		Editor:     getenv("EDITOR", "vi"),
	}
}

// helpers
func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

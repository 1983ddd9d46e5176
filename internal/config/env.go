package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// parseEnv reads key and converts it with parse. Unset, blank or rejected
// values yield defaultValue.
func parseEnv[T any](key string, defaultValue T, parse func(string) (T, bool)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if val, ok := parse(raw); ok {
		return val
	}
	return defaultValue
}

func envOrDefault(key, defaultValue string) string {
	return parseEnv(key, defaultValue, func(raw string) (string, bool) { return raw, true })
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	return parseEnv(key, defaultValue, func(raw string) (time.Duration, bool) {
		parsed, err := time.ParseDuration(raw)
		return parsed, err == nil && parsed > 0
	})
}

func intEnvOrDefault(key string, defaultValue int) int {
	return parseEnv(key, defaultValue, func(raw string) (int, bool) {
		val, err := strconv.Atoi(raw)
		return val, err == nil && val > 0
	})
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	return parseEnv(key, defaultValue, func(raw string) (bool, bool) {
		switch strings.ToLower(raw) {
		case "1", "true", "yes":
			return true, true
		case "0", "false", "no":
			return false, true
		}
		return false, false
	})
}

package utils

import (
	"os"
	"strconv"
	"strings"

	"photoshare-api/internal/logger"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() error {
	// Variables already in the environment take precedence
	return godotenv.Load()
}

// GetEnv returns the value of an environment variable or a default value when
// it is unset or empty
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses an integer variable, surrounding spaces allowed. Malformed
// values are logged and replaced by defaultValue.
func GetEnvInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(GetEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("ignoring non-integer env value", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return n
}

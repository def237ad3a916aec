package utils

import (
	"encoding/json"

	"photoshare-api/internal/logger"
)

// SafeJSONParse parses JSON safely
func SafeJSONParse(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// ParseVariables decodes a JSON object of GraphQL variables. Empty input
// yields a nil map.
func ParseVariables(raw string) (map[string]interface{}, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var vars map[string]interface{}
	if err := SafeJSONParse([]byte(raw), &vars); err != nil {
		return nil, err
	}
	return vars, nil
}

// LogError logs an error if it's not nil
func LogError(err error, context string) {
	if err != nil {
		logger.Error("request failed", "context", context, "error", err)
	}
}

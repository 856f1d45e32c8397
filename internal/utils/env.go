// Package utils provides small shared helpers: environment parsing and
// logger setup.
package utils

import (
	"os"
	"strconv"
	"strings"
)

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ParseInteger parses an integer environment value, falling back to a
// default on absence or parse failure.
func ParseInteger(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// ParseBoolean parses a boolean environment value, falling back to a default
// on absence or parse failure.
func ParseBoolean(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// SplitAndTrim splits a string by a separator and trims whitespace from each
// part, dropping empties.
func SplitAndTrim(s string, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ParseArray splits a comma-separated environment value into a string slice.
func ParseArray(value string, defaultValue []string) []string {
	if value == "" {
		return defaultValue
	}
	if parsed := SplitAndTrim(value, ","); len(parsed) > 0 {
		return parsed
	}
	return defaultValue
}

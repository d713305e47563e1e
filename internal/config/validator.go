package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate checks the loaded values and reports every problem at once
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be within 1-65535, got %d", c.Port))
	}
	if !containsFold(validLogLevels, c.LogLevel) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.LogLevel))
	}
	if !containsFold(validLogFormats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be one of %s, got %q", strings.Join(validLogFormats, ", "), c.LogFormat))
	}
	if c.SessionCacheSize < 1 {
		problems = append(problems, fmt.Sprintf("SESSION_CACHE_SIZE must be positive, got %d", c.SessionCacheSize))
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, fmt.Sprintf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	if strings.TrimSpace(c.DefaultSeed) == "" {
		problems = append(problems, "DEFAULT_SEED must not be blank")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Warnings lists non-fatal concerns worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Environment == EnvironmentProduction && c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - tournament routes are open to anyone")
	}
	if c.Environment == EnvironmentProduction && !strings.EqualFold(c.LogFormat, "json") {
		warnings = append(warnings, "LOG_FORMAT is not json in production - logs will be harder to ingest")
	}

	return warnings
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:             8080,
		LogLevel:         "INFO",
		LogFormat:        "json",
		Environment:      "dev",
		SessionCacheSize: 10,
		SessionTTL:       time.Minute,
		DefaultSeed:      "PUGLAR",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name     string
		mutate   func(c *Config)
		contains string
	}{
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, contains: "PORT"},
		{name: "port too high", mutate: func(c *Config) { c.Port = 70000 }, contains: "PORT"},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "loud" }, contains: "LOG_LEVEL"},
		{name: "unknown format", mutate: func(c *Config) { c.LogFormat = "xml" }, contains: "LOG_FORMAT"},
		{name: "empty cache", mutate: func(c *Config) { c.SessionCacheSize = 0 }, contains: "SESSION_CACHE_SIZE"},
		{name: "zero ttl", mutate: func(c *Config) { c.SessionTTL = 0 }, contains: "SESSION_TTL"},
		{name: "blank seed", mutate: func(c *Config) { c.DefaultSeed = "  " }, contains: "DEFAULT_SEED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	c := validConfig()
	c.Port = -1
	c.SessionCacheSize = -5

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "SESSION_CACHE_SIZE")
}

func TestWarnings(t *testing.T) {
	c := validConfig()
	assert.Empty(t, c.Warnings())

	c.Environment = EnvironmentProduction
	c.LogFormat = "text"
	warnings := c.Warnings()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "API_KEY")
	assert.Contains(t, warnings[1], "LOG_FORMAT")
}

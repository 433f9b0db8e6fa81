package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// GitHub config
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, "lumenworks", cfg.GitHub.Org)
	assert.Equal(t, 50, cfg.GitHub.PageSize)
	assert.Equal(t, "website", cfg.GitHub.ExcludeSubstr)

	// Site config
	assert.Equal(t, "https://lumenworks.app", cfg.Site.BaseURL)
	assert.Empty(t, cfg.Site.PagesFile)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 50, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                   "9000",
		"HOST":                   "127.0.0.1",
		"GITHUB_ORG":             "example-org",
		"GITHUB_PAGE_SIZE":       "25",
		"GITHUB_EXCLUDE_SUBSTR":  "internal",
		"SITE_BASE_URL":          "https://example.test",
		"INSTALL_STATE_DIR":      "/tmp/install-test",
		"LOG_LEVEL":              "debug",
		"LOG_DEV":                "true",
		"RATE_LIMIT_RPS":         "500",
		"RATE_LIMIT_BURST":       "1000",
		"RATE_LIMIT_ENABLED":     "false",
		"GITHUB_TIMEOUT_SECONDS": "5",
	}

	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	// Verify server config
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	// Verify GitHub config
	assert.Equal(t, "example-org", cfg.GitHub.Org)
	assert.Equal(t, 25, cfg.GitHub.PageSize)
	assert.Equal(t, "internal", cfg.GitHub.ExcludeSubstr)
	assert.Equal(t, 5, cfg.GitHub.TimeoutSeconds)

	// Verify site and install config
	assert.Equal(t, "https://example.test", cfg.Site.BaseURL)
	assert.Equal(t, "/tmp/install-test", cfg.Install.StateDir)

	// Verify logging config
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	// Verify rate limit config
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	// Only set some environment variables
	err := os.Setenv("PORT", "3000")
	require.NoError(t, err)
	defer os.Unsetenv("PORT")

	err = os.Setenv("LOG_LEVEL", "warn")
	require.NoError(t, err)
	defer os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Verify default values still apply
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "lumenworks", cfg.GitHub.Org)
	assert.Equal(t, 50, cfg.GitHub.PageSize)
}

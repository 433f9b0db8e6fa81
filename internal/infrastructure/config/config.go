package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	GitHub    GitHubConfig
	Site      SiteConfig
	Install   InstallConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// GitHubConfig holds the organization repository source configuration.
type GitHubConfig struct {
	BaseURL        string `envconfig:"GITHUB_API_URL" default:"https://api.github.com"`
	Org            string `envconfig:"GITHUB_ORG" default:"lumenworks"`
	PageSize       int    `envconfig:"GITHUB_PAGE_SIZE" default:"50"`
	ExcludeSubstr  string `envconfig:"GITHUB_EXCLUDE_SUBSTR" default:"website"`
	TimeoutSeconds int    `envconfig:"GITHUB_TIMEOUT_SECONDS" default:"15"`
}

// SiteConfig holds public site configuration.
type SiteConfig struct {
	BaseURL   string `envconfig:"SITE_BASE_URL" default:"https://lumenworks.app"`
	PagesFile string `envconfig:"SITE_PAGES_FILE" default:""`
}

// InstallConfig holds install-prompt persistence configuration.
type InstallConfig struct {
	StateDir string `envconfig:"INSTALL_STATE_DIR" default:"/tmp/lumenworks-site/install"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"50"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"100"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		GitHub: GitHubConfig{
			BaseURL:        "https://api.github.com",
			Org:            "lumenworks",
			PageSize:       50,
			ExcludeSubstr:  "website",
			TimeoutSeconds: 15,
		},
		Site: SiteConfig{
			BaseURL: "https://lumenworks.app",
		},
		Install: InstallConfig{
			StateDir: "/tmp/lumenworks-site/install",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
			Enabled:           true,
		},
	}
}

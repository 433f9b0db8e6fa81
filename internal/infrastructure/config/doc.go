// Package config provides 12-factor configuration management for the site backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - GitHub: Organization repository source settings
//   - Site: Public base URL and sitemap page overrides
//   - Install: Install-prompt dismissal persistence
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - GITHUB_API_URL, GITHUB_ORG, GITHUB_PAGE_SIZE, GITHUB_EXCLUDE_SUBSTR
//   - SITE_BASE_URL, SITE_PAGES_FILE, INSTALL_STATE_DIR
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST
package config

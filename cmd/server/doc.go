// Package main is the entry point for the site backend server.
//
// This application serves the marketing site's dynamic pieces: the
// organization repository browser, the sitemap descriptor, and the
// realtime install-prompt channel.
//
// The server provides:
//   - REST API for the repository view model
//   - sitemap.xml rendering
//   - WebSocket sessions for the install banner lifecycle
//   - Rate limiting and metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8080 -org lumenworks
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main

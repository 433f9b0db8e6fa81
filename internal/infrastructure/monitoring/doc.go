/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the site
backend, tracking HTTP requests, GitHub fetches, install-prompt activity,
and WebSocket sessions.

# Features

- HTTP request metrics (latency, throughput, size)
- GitHub API fetch metrics (duration, status)
- Install banner metrics (shown, dismissed, accepted)
- WebSocket connection metrics
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.IncBannersShown()
	metrics.RecordGitHubFetch("repos", "200", duration)

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring

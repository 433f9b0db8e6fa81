package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// GitHub fetch metrics
	GitHubFetches       *prometheus.CounterVec
	GitHubFetchDuration *prometheus.HistogramVec

	// Install prompt metrics
	BannersShown      prometheus.Counter
	BannersDismissed  prometheus.Counter
	InstallsAccepted  prometheus.Counter
	InstallsDismissed prometheus.Counter
	InstallsConfirmed prometheus.Counter

	// Sitemap metrics
	SitemapHits prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot Snapshot

	mu sync.RWMutex
}

// Snapshot holds current metric values for the JSON API
type Snapshot struct {
	TotalRequests     int64   `json:"total_requests"`
	TotalErrors       int64   `json:"total_errors"`
	ActiveConnections int64   `json:"active_connections"`
	BannersShown      int64   `json:"banners_shown"`
	InstallsAccepted  int64   `json:"installs_accepted"`
	AvgDurationMs     float64 `json:"avg_duration_ms"`
	UptimeSeconds     float64 `json:"uptime_seconds"`

	totalDuration float64
	requestCount  int64
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "site_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "site_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "site_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "site_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		// GitHub fetch metrics
		GitHubFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "site_github_fetches_total",
				Help: "Total number of GitHub API fetches",
			},
			[]string{"endpoint", "status"},
		),
		GitHubFetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "site_github_fetch_duration_seconds",
				Help:    "GitHub API fetch duration in seconds",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint"},
		),

		// Install prompt metrics
		BannersShown: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "site_install_banners_shown_total",
				Help: "Total number of install banners shown",
			},
		),
		BannersDismissed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "site_install_banners_dismissed_total",
				Help: "Total number of install banners dismissed",
			},
		),
		InstallsAccepted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "site_installs_accepted_total",
				Help: "Total number of accepted native install prompts",
			},
		),
		InstallsDismissed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "site_installs_dismissed_total",
				Help: "Total number of dismissed native install prompts",
			},
		),
		InstallsConfirmed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "site_installs_confirmed_total",
				Help: "Total number of installed confirmations received",
			},
		),

		// Sitemap metrics
		SitemapHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "site_sitemap_hits_total",
				Help: "Total number of sitemap requests",
			},
		),

		// WebSocket metrics
		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "site_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "site_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),

		// System metrics
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "site_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	// Update snapshot
	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.totalDuration += duration.Seconds()
	m.snapshot.requestCount++
	if len(status) > 0 && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordGitHubFetch records a GitHub API fetch
func (m *Metrics) RecordGitHubFetch(endpoint, status string, duration time.Duration) {
	m.GitHubFetches.WithLabelValues(endpoint, status).Inc()
	m.GitHubFetchDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// IncBannersShown increments the banners shown counter
func (m *Metrics) IncBannersShown() {
	m.BannersShown.Inc()
	m.mu.Lock()
	m.snapshot.BannersShown++
	m.mu.Unlock()
}

// IncBannersDismissed increments the banners dismissed counter
func (m *Metrics) IncBannersDismissed() {
	m.BannersDismissed.Inc()
}

// IncInstallsAccepted increments the accepted installs counter
func (m *Metrics) IncInstallsAccepted() {
	m.InstallsAccepted.Inc()
	m.mu.Lock()
	m.snapshot.InstallsAccepted++
	m.mu.Unlock()
}

// IncInstallsDismissed increments the dismissed installs counter
func (m *Metrics) IncInstallsDismissed() {
	m.InstallsDismissed.Inc()
}

// IncInstallsConfirmed increments the installed confirmations counter
func (m *Metrics) IncInstallsConfirmed() {
	m.InstallsConfirmed.Inc()
}

// IncSitemapHits increments the sitemap hit counter
func (m *Metrics) IncSitemapHits() {
	m.SitemapHits.Inc()
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
	m.mu.Lock()
	m.snapshot.ActiveConnections++
	m.mu.Unlock()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
	m.mu.Lock()
	m.snapshot.ActiveConnections--
	m.mu.Unlock()
}

// GetSnapshot returns current metric values for the JSON API
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	snap := m.snapshot
	m.mu.RUnlock()

	if snap.requestCount > 0 {
		snap.AvgDurationMs = snap.totalDuration / float64(snap.requestCount) * 1000
	}
	snap.UptimeSeconds = time.Since(m.startTime).Seconds()
	return snap
}

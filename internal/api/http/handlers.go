package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/website/backend/internal/domain/repos"
	"github.com/lumenworks/website/backend/internal/domain/sitemap"
	"github.com/lumenworks/website/backend/internal/infrastructure/monitoring"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	browser    *repos.Browser
	sitemapXML []byte
	metrics    *monitoring.Metrics
}

// NewHandlers creates a new handler set. The sitemap is rendered once at
// startup; it is a static descriptor.
func NewHandlers(browser *repos.Browser, builder *sitemap.Builder, metrics *monitoring.Metrics) (*Handlers, error) {
	xml, err := builder.XML()
	if err != nil {
		return nil, err
	}
	return &Handlers{
		browser:    browser,
		sitemapXML: xml,
		metrics:    metrics,
	}, nil
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "lumenworks-site",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"sitemap": gin.H{"bytes": len(h.sitemapXML)},
	})
}

// Org returns the organization repository view model. The error state
// maps to 502: the upstream API failed, not this service.
func (h *Handlers) Org(c *gin.Context) {
	view := h.browser.Load(c.Request.Context())

	status := http.StatusOK
	if view.State == repos.StateError {
		status = http.StatusBadGateway
	}
	c.JSON(status, view)
}

// Sitemap serves the rendered sitemap descriptor
func (h *Handlers) Sitemap(c *gin.Context) {
	if h.metrics != nil {
		h.metrics.IncSitemapHits()
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", h.sitemapXML)
}

// Metrics returns a JSON snapshot of current metrics
func (h *Handlers) Metrics(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metrics disabled"})
		return
	}
	c.JSON(http.StatusOK, h.metrics.GetSnapshot())
}

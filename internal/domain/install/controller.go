package install

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lumenworks/website/backend/internal/infrastructure/logging"
	"github.com/lumenworks/website/backend/internal/infrastructure/monitoring"
)

// Banner is the render state pushed to the page. The banner is visible
// only while a captured prompt is held, the user has not dismissed it,
// and the app is not installed.
type Banner struct {
	Visible   bool     `json:"visible"`
	Installed bool     `json:"installed"`
	Platforms []string `json:"platforms,omitempty"`
}

// Controller orchestrates the install banner lifecycle for one session.
type Controller struct {
	mu            sync.Mutex
	handle        PromptHandle
	bannerVisible bool
	installed     bool

	active  bool
	store   Store
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewController creates a controller for a page session.
//
// standalone reports whether the page already runs in standalone display
// mode (or the vendor-specific standalone flag). In that case the
// controller is terminal from the start: it renders nothing and needs no
// signal subscriptions.
func NewController(standalone bool, store Store, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Controller{
		store:  store,
		logger: logger,
	}
	if standalone {
		c.installed = true
		return c
	}
	c.active = true
	return c
}

// WithMetrics adds metrics tracking to the controller
func (c *Controller) WithMetrics(metrics *monitoring.Metrics) *Controller {
	c.metrics = metrics
	return c
}

// Active reports whether the session should subscribe to platform
// signals. False when the app was already installed at startup.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// HandleInstallable consumes the installability signal, capturing the
// prompt capability. The banner becomes visible unless a dismissal
// record exists. Ignored once installed.
func (c *Controller) HandleInstallable(h PromptHandle) Banner {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.installed || !c.active {
		return c.bannerLocked()
	}

	c.handle = h
	if c.store == nil || !c.store.Dismissed() {
		if !c.bannerVisible {
			c.bannerVisible = true
			if c.metrics != nil {
				c.metrics.IncBannersShown()
			}
		}
	}
	return c.bannerLocked()
}

// HandleInstalled consumes the installed confirmation. Terminal: the
// banner is hidden, the handle released, and every later signal ignored.
func (c *Controller) HandleInstalled() Banner {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.installed = true
	c.bannerVisible = false
	c.handle = nil
	if c.metrics != nil {
		c.metrics.IncInstallsConfirmed()
	}
	return c.bannerLocked()
}

// RequestInstall triggers the native install prompt and awaits the
// user's choice. No-op when no handle is held. The handle is cleared on
// every path; failures are logged and never change the banner state.
func (c *Controller) RequestInstall(ctx context.Context) Banner {
	c.mu.Lock()
	h := c.handle
	c.mu.Unlock()

	if h == nil {
		return c.Banner()
	}

	choice, err := h.Prompt(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.handle = nil

	if err != nil {
		c.logger.Warn("install prompt failed", zap.Error(err))
		return c.bannerLocked()
	}

	switch choice.Outcome {
	case OutcomeAccepted:
		c.bannerVisible = false
		if c.metrics != nil {
			c.metrics.IncInstallsAccepted()
		}
		c.logger.Info("install prompt accepted", zap.String("platform", choice.Platform))
	case OutcomeDismissed:
		// Native-prompt dismissal is not banner dismissal: no record is
		// written and the banner state stays as it was.
		if c.metrics != nil {
			c.metrics.IncInstallsDismissed()
		}
		c.logger.Info("install prompt dismissed", zap.String("platform", choice.Platform))
	}
	return c.bannerLocked()
}

// Dismiss hides the banner and persists the dismissal record. The
// in-memory effect applies even when the store write fails.
func (c *Controller) Dismiss() Banner {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bannerVisible = false
	if c.metrics != nil {
		c.metrics.IncBannersDismissed()
	}
	if c.store != nil {
		if err := c.store.SetDismissed(); err != nil {
			c.logger.Warn("failed to persist dismissal", zap.Error(err))
		}
	}
	return c.bannerLocked()
}

// Banner returns the current render state.
func (c *Controller) Banner() Banner {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bannerLocked()
}

func (c *Controller) bannerLocked() Banner {
	b := Banner{
		Installed: c.installed,
		Visible:   !c.installed && c.bannerVisible && c.handle != nil,
	}
	if b.Visible {
		b.Platforms = c.handle.Platforms()
	}
	return b
}

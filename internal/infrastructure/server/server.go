package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/lumenworks/website/backend/internal/api/http"
	"github.com/lumenworks/website/backend/internal/api/middleware"
	"github.com/lumenworks/website/backend/internal/api/ws"
	"github.com/lumenworks/website/backend/internal/domain/install"
	"github.com/lumenworks/website/backend/internal/domain/repos"
	"github.com/lumenworks/website/backend/internal/domain/sitemap"
	"github.com/lumenworks/website/backend/internal/infrastructure/config"
	"github.com/lumenworks/website/backend/internal/infrastructure/logging"
	"github.com/lumenworks/website/backend/internal/infrastructure/monitoring"
	"github.com/lumenworks/website/backend/internal/providers/github"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	browser *repos.Browser
	store   *install.DirStore
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing site backend",
		zap.String("port", cfg.Server.Port),
		zap.String("org", cfg.GitHub.Org),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()

	// GitHub client and repository browser
	githubClient := github.NewClient(github.Config{
		BaseURL:  cfg.GitHub.BaseURL,
		Org:      cfg.GitHub.Org,
		PageSize: cfg.GitHub.PageSize,
		Timeout:  time.Duration(cfg.GitHub.TimeoutSeconds) * time.Second,
	}).WithMetrics(metrics)
	browser := repos.NewBrowser(githubClient, cfg.GitHub.ExcludeSubstr, logger)

	// Sitemap: built-in page set unless a pages file is configured
	pages := sitemap.DefaultPages()
	if cfg.Site.PagesFile != "" {
		loaded, err := sitemap.LoadPages(cfg.Site.PagesFile)
		if err != nil {
			logger.Warn("Failed to load pages file, using built-in pages", zap.Error(err))
		} else {
			pages = loaded
			logger.Info("Loaded sitemap pages", zap.Int("count", len(pages)))
		}
	}
	builder := sitemap.NewBuilder(cfg.Site.BaseURL, pages)

	// Dismissal record storage
	store := install.NewDirStore(cfg.Install.StateDir)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers, err := apihttp.NewHandlers(browser, builder, metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to create handlers: %w", err)
	}
	wsHandler := ws.NewHandler(store, logger, metrics)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Compressed payload routes
	compressed := router.Group("/", middleware.Gzip())
	compressed.GET("/api/org", handlers.Org)
	compressed.GET("/sitemap.xml", handlers.Sitemap)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics endpoints
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/metrics", handlers.Metrics)

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		browser: browser,
		store:   store,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	// Sync logger before exit
	s.logger.Sync()

	return nil
}

// Package server provides the HTTP server setup and routing configuration.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/zearom/caster/internal/api"
	"github.com/zearom/caster/internal/config"
	"github.com/zearom/caster/internal/db"
	"github.com/zearom/caster/internal/livesync"
	"github.com/zearom/caster/internal/logger"
	"github.com/zearom/caster/internal/middleware"
	"github.com/zearom/caster/internal/overlay"
	"github.com/zearom/caster/internal/upload"
)

// Server represents the HTTP server
type Server struct {
	config         *config.Config
	db             *db.DB
	repos          *db.Repositories
	overlayService *overlay.Service
	hub            *livesync.Hub
	uploadStore    *upload.Store
	router         *gin.Engine
	server         *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, database *db.DB) *Server {
	repos := db.NewRepositories(database)
	overlayService := overlay.NewService(repos)

	// Committed writes push revision events to connected display surfaces.
	hub := livesync.NewHub()
	overlayService.SetNotifier(hub)

	return &Server{
		config:         cfg,
		db:             database,
		repos:          repos,
		overlayService: overlayService,
		hub:            hub,
	}
}

// OverlayService exposes the settings store, mainly for startup provisioning
func (s *Server) OverlayService() *overlay.Service {
	return s.overlayService
}

// setupRouter initializes the Gin router with middleware and routes
func (s *Server) setupRouter() {
	// Set Gin mode based on log level
	if s.config.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create new Gin router
	s.router = gin.New()

	// Add middleware stack
	s.router.Use(middleware.RequestLogger()) // Custom zerolog request logger
	s.router.Use(gin.Recovery())             // Panic recovery
	s.router.Use(cors.Default())             // CORS support (allows all origins)

	// Cap multipart memory; uploads above the limit are rejected by the
	// validator anyway.
	s.router.MaxMultipartMemory = s.config.Upload.MaxBytes

	// Uploaded media is served directly from the upload directory
	s.router.Static("/uploads", s.uploadStore.Dir())

	// Create API route group
	apiGroup := s.router.Group("/api")

	// Register service routes
	api.SetupHealthRoutes(apiGroup, s.db)
	api.SetupOverlayRoutes(apiGroup, s.overlayService)
	api.SetupUploadRoutes(apiGroup, s.overlayService, s.uploadStore)
	api.SetupSyncRoutes(apiGroup, s.overlayService, s.hub, s.config.Sync.PollInterval)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	store, err := upload.NewStore(s.config.Upload.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize upload store: %w", err)
	}
	s.uploadStore = store

	s.setupRouter()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.server = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	logger.Log.Info().
		Str("host", s.config.Server.Host).
		Int("port", s.config.Server.Port).
		Msg("Starting HTTP server")

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Info().Msg("Shutting down server gracefully")

	// Check if server was started before attempting shutdown
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	logger.Log.Info().Msg("Server stopped")
	return nil
}

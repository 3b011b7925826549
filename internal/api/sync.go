package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zearom/caster/internal/livesync"
	"github.com/zearom/caster/internal/logger"
	"github.com/zearom/caster/internal/models"
	"github.com/zearom/caster/internal/overlay"
)

// PollResponse carries the current revision alongside the full document, so
// a display surface never needs a second request after seeing a new revision.
// PollIntervalMS is the server-configured cadence a polling surface should
// adopt.
type PollResponse struct {
	Revision       int64                   `json:"revision"`
	PollIntervalMS int64                   `json:"poll_interval_ms"`
	Settings       *models.OverlaySettings `json:"settings"`
}

// SyncHandler handles display-surface synchronization requests
type SyncHandler struct {
	service      *overlay.Service
	hub          *livesync.Hub
	pollInterval time.Duration
}

// NewSyncHandler creates a new sync handler instance. A non-positive
// pollInterval falls back to the default cadence.
func NewSyncHandler(service *overlay.Service, hub *livesync.Hub, pollInterval time.Duration) *SyncHandler {
	if pollInterval <= 0 {
		pollInterval = livesync.DefaultPollInterval
	}
	return &SyncHandler{service: service, hub: hub, pollInterval: pollInterval}
}

// Poll handles GET /api/poll/:category
func (h *SyncHandler) Poll(c *gin.Context) {
	category, ok := normalizeCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_category",
			Message: "Category must not be empty",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	settings, err := h.service.Get(ctx, category)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("category", category).
			Msg("Failed to load settings for poll")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to load settings",
		})
		return
	}

	c.JSON(http.StatusOK, PollResponse{
		Revision:       settings.Revision,
		PollIntervalMS: h.pollInterval.Milliseconds(),
		Settings:       settings,
	})
}

// Notifications handles GET /api/ws/:category, upgrading to a websocket that
// streams revision-change events.
func (h *SyncHandler) Notifications(c *gin.Context) {
	category, ok := normalizeCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_category",
			Message: "Category must not be empty",
		})
		return
	}

	if err := h.hub.ServeWS(c.Writer, c.Request, category); err != nil {
		// Upgrade failures have already written a response.
		logger.Log.Debug().
			Err(err).
			Str("category", category).
			Msg("Websocket upgrade failed")
	}
}

// SetupSyncRoutes registers display-surface synchronization routes
func SetupSyncRoutes(apiGroup *gin.RouterGroup, service *overlay.Service, hub *livesync.Hub, pollInterval time.Duration) {
	handler := NewSyncHandler(service, hub, pollInterval)

	apiGroup.GET("/poll/:category", handler.Poll)
	apiGroup.GET("/ws/:category", handler.Notifications)
}

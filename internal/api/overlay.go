package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zearom/caster/internal/logger"
	"github.com/zearom/caster/internal/models"
	"github.com/zearom/caster/internal/overlay"
)

// Request/Response DTOs

// SettingsResponse wraps a full settings document
type SettingsResponse struct {
	Settings *models.OverlaySettings `json:"settings"`
}

// PhrasesRequest carries a replacement secondary-phrase list
type PhrasesRequest struct {
	Phrases []string `json:"phrases" binding:"required"`
}

// PhrasesResponse represents the stored secondary-phrase list
type PhrasesResponse struct {
	Phrases []string `json:"phrases"`
}

// VisibilityRequest toggles the overlay on or off
type VisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

// VisibilityResponse reports the committed visibility state
type VisibilityResponse struct {
	Visible  bool  `json:"visible"`
	Revision int64 `json:"revision"`
}

// CategoriesResponse lists the provisioned settings categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// OverlayHandler handles settings-related API requests
type OverlayHandler struct {
	service *overlay.Service
}

// NewOverlayHandler creates a new settings handler instance
func NewOverlayHandler(service *overlay.Service) *OverlayHandler {
	return &OverlayHandler{service: service}
}

// normalizeCategory canonicalizes a category path parameter. Categories are
// created on first access, so the only hard requirement is a non-empty name.
func normalizeCategory(raw string) (string, bool) {
	category := strings.ToLower(strings.TrimSpace(raw))
	if category == "" {
		return "", false
	}
	return category, true
}

// GetSettings handles GET /api/settings/:category
func (h *OverlayHandler) GetSettings(c *gin.Context) {
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
			Msg("Failed to load settings")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to load settings",
		})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SaveSettings handles POST /api/settings/:category
func (h *OverlayHandler) SaveSettings(c *gin.Context) {
	category, ok := normalizeCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_category",
			Message: "Category must not be empty",
		})
		return
	}

	// Values arrive either natively typed or as form strings; the decoder
	// coerces both.
	var values map[string]any
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	settings, err := h.service.Save(ctx, category, overlay.DecodeValues(values))
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("category", category).
			Int("fields", len(values)).
			Msg("Failed to save settings")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "save_failed",
			Message: "Failed to save settings",
		})
		return
	}

	logger.Log.Info().
		Str("category", category).
		Int64("revision", settings.Revision).
		Int("fields", len(values)).
		Msg("Settings saved")

	c.JSON(http.StatusOK, settings)
}

// ResetSettings handles POST /api/settings/:category/reset
func (h *OverlayHandler) ResetSettings(c *gin.Context) {
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

	settings, err := h.service.Reset(ctx, category)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("category", category).
			Msg("Failed to reset settings")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "reset_failed",
			Message: "Failed to reset settings to defaults",
		})
		return
	}

	logger.Log.Info().
		Str("category", category).
		Int64("revision", settings.Revision).
		Msg("Settings reset to defaults")

	c.JSON(http.StatusOK, settings)
}

// GetPhrases handles GET /api/secondary-phrases/:category
func (h *OverlayHandler) GetPhrases(c *gin.Context) {
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

	phrases, err := h.service.SecondaryPhrases(ctx, category)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("category", category).
			Msg("Failed to load secondary phrases")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to load secondary phrases",
		})
		return
	}

	c.JSON(http.StatusOK, PhrasesResponse{Phrases: phrases})
}

// SavePhrases handles POST /api/secondary-phrases/:category
func (h *OverlayHandler) SavePhrases(c *gin.Context) {
	category, ok := normalizeCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_category",
			Message: "Category must not be empty",
		})
		return
	}

	var req PhrasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	phrases, err := h.service.SaveSecondaryPhrases(ctx, category, req.Phrases)
	if err != nil {
		if errors.Is(err, overlay.ErrEmptyPhraseList) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "empty_phrase_list",
				Message: "At least one non-blank phrase is required",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("category", category).
			Msg("Failed to save secondary phrases")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "save_failed",
			Message: "Failed to save secondary phrases",
		})
		return
	}

	logger.Log.Info().
		Str("category", category).
		Int("phrase_count", len(phrases)).
		Msg("Secondary phrases saved")

	c.JSON(http.StatusOK, PhrasesResponse{Phrases: phrases})
}

// SetVisibility handles POST /api/visibility/:category
func (h *OverlayHandler) SetVisibility(c *gin.Context) {
	category, ok := normalizeCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_category",
			Message: "Category must not be empty",
		})
		return
	}

	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	settings, err := h.service.SetVisibility(ctx, category, *req.Visible)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("category", category).
			Bool("visible", *req.Visible).
			Msg("Failed to set overlay visibility")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "save_failed",
			Message: "Failed to set overlay visibility",
		})
		return
	}

	logger.Log.Info().
		Str("category", category).
		Bool("visible", settings.IsVisible).
		Int64("revision", settings.Revision).
		Msg("Overlay visibility changed")

	c.JSON(http.StatusOK, VisibilityResponse{
		Visible:  settings.IsVisible,
		Revision: settings.Revision,
	})
}

// ListCategories handles GET /api/categories
func (h *OverlayHandler) ListCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	categories, err := h.service.Categories(ctx)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Msg("Failed to list categories")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to list categories",
		})
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}

// SetupOverlayRoutes registers settings-related routes
func SetupOverlayRoutes(apiGroup *gin.RouterGroup, service *overlay.Service) {
	handler := NewOverlayHandler(service)

	apiGroup.GET("/categories", handler.ListCategories)
	apiGroup.GET("/settings/:category", handler.GetSettings)
	apiGroup.POST("/settings/:category", handler.SaveSettings)
	apiGroup.POST("/settings/:category/reset", handler.ResetSettings)

	apiGroup.GET("/secondary-phrases/:category", handler.GetPhrases)
	apiGroup.POST("/secondary-phrases/:category", handler.SavePhrases)

	apiGroup.POST("/visibility/:category", handler.SetVisibility)
}

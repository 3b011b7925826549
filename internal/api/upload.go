package api

import (
	"context"
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zearom/caster/internal/logger"
	"github.com/zearom/caster/internal/overlay"
	"github.com/zearom/caster/internal/upload"
)

// UploadResponse reports a stored media file
type UploadResponse struct {
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Revision    int64  `json:"revision"`
}

// UploadHandler handles media upload requests
type UploadHandler struct {
	service *overlay.Service
	store   *upload.Store
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(service *overlay.Service, store *upload.Store) *UploadHandler {
	return &UploadHandler{service: service, store: store}
}

// UploadMedia handles POST /api/upload/:category/:kind
func (h *UploadHandler) UploadMedia(c *gin.Context) {
	category, ok := normalizeCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_category",
			Message: "Category must not be empty",
		})
		return
	}

	kind := overlay.FileKind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_kind",
			Message: "Upload kind must be 'logo' or 'image'",
		})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "no_file",
			Message: "No file provided",
		})
		return
	}

	result, err := upload.ValidateImage(header)
	if err != nil {
		logger.Log.Warn().
			Err(err).
			Str("category", category).
			Str("kind", string(kind)).
			Str("filename", header.Filename).
			Int64("size", header.Size).
			Str("reason", result.Reason).
			Msg("Rejected media upload")

		switch {
		case errors.Is(err, upload.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   "file_too_large",
				Message: result.Reason,
			})
		case errors.Is(err, upload.ErrNotImage), errors.Is(err, upload.ErrNoFile):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_file",
				Message: result.Reason,
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "upload_failed",
				Message: "Failed to read uploaded file",
			})
		}
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	// Remember the file being replaced so it can be cleaned up after the
	// new path is committed.
	prior, err := h.service.Get(ctx, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to load settings",
		})
		return
	}
	oldPath := mediaPath(prior.CompanyLogo)
	if kind == overlay.FileKindImage {
		oldPath = mediaPath(prior.CategoryImage)
	}

	name, err := h.store.SaveFile(header, category, string(kind))
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("category", category).
			Str("kind", string(kind)).
			Msg("Failed to store uploaded file")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "store_failed",
			Message: "Failed to store uploaded file",
		})
		return
	}

	servedPath := path.Join("/uploads", name)
	settings, err := h.service.SetMediaPath(ctx, category, kind, servedPath)
	if err != nil {
		// The settings document is the source of truth; an orphaned file
		// must not be referenced by it.
		if rmErr := h.store.Remove(name); rmErr != nil {
			logger.Log.Warn().Err(rmErr).Str("file", name).Msg("Failed to remove orphaned upload")
		}

		logger.Log.Error().
			Err(err).
			Str("category", category).
			Str("kind", string(kind)).
			Msg("Failed to record uploaded media path")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "save_failed",
			Message: "Failed to record uploaded media",
		})
		return
	}

	if oldPath != "" {
		if err := h.store.Remove(oldPath); err != nil {
			logger.Log.Warn().Err(err).Str("file", oldPath).Msg("Failed to remove replaced upload")
		}
	}

	logger.Log.Info().
		Str("category", category).
		Str("kind", string(kind)).
		Str("path", servedPath).
		Str("content_type", result.ContentType).
		Int64("revision", settings.Revision).
		Msg("Media uploaded")

	c.JSON(http.StatusOK, UploadResponse{
		Path:        servedPath,
		ContentType: result.ContentType,
		Revision:    settings.Revision,
	})
}

// RemoveLogo handles POST /api/remove-logo/:category
func (h *UploadHandler) RemoveLogo(c *gin.Context) {
	h.removeMedia(c, overlay.FileKindLogo)
}

// RemoveImage handles POST /api/remove-image/:category
func (h *UploadHandler) RemoveImage(c *gin.Context) {
	h.removeMedia(c, overlay.FileKindImage)
}

func (h *UploadHandler) removeMedia(c *gin.Context, kind overlay.FileKind) {
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

	prior, err := h.service.Get(ctx, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to load settings",
		})
		return
	}
	oldPath := mediaPath(prior.CompanyLogo)
	if kind == overlay.FileKindImage {
		oldPath = mediaPath(prior.CategoryImage)
	}

	var revision int64
	switch kind {
	case overlay.FileKindLogo:
		s, err := h.service.RemoveLogo(ctx, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "save_failed",
				Message: "Failed to remove logo",
			})
			return
		}
		revision = s.Revision
	case overlay.FileKindImage:
		s, err := h.service.RemoveImage(ctx, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "save_failed",
				Message: "Failed to remove image",
			})
			return
		}
		revision = s.Revision
	}

	if oldPath != "" {
		if err := h.store.Remove(oldPath); err != nil {
			logger.Log.Warn().Err(err).Str("file", oldPath).Msg("Failed to remove media file")
		}
	}

	logger.Log.Info().
		Str("category", category).
		Str("kind", string(kind)).
		Int64("revision", revision).
		Msg("Media removed")

	c.JSON(http.StatusOK, MessageResponse{Message: "Media removed"})
}

// mediaPath reduces a stored media path to the filename inside the upload
// directory
func mediaPath(stored string) string {
	if stored == "" {
		return ""
	}
	return filepath.Base(stored)
}

// SetupUploadRoutes registers media upload routes
func SetupUploadRoutes(apiGroup *gin.RouterGroup, service *overlay.Service, store *upload.Store) {
	handler := NewUploadHandler(service, store)

	apiGroup.POST("/upload/:category/:kind", handler.UploadMedia)
	apiGroup.POST("/remove-logo/:category", handler.RemoveLogo)
	apiGroup.POST("/remove-image/:category", handler.RemoveImage)
}

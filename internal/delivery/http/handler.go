package http

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/skulens/backend/internal/domain"
)

const (
	serviceName    = "skulens-backend"
	serviceVersion = "1.0.0"
)

// CatalogProcessor is the usecase dependency of the HTTP handler
type CatalogProcessor interface {
	ProcessImage(ctx context.Context, image []byte) *domain.CatalogResponse
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalogService CatalogProcessor
	maxFileSize    int64
}

// NewHandler creates a new HTTP handler
func NewHandler(catalogService CatalogProcessor, maxFileSize int64) *Handler {
	return &Handler{
		catalogService: catalogService,
		maxFileSize:    maxFileSize,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// Root returns basic service information
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     serviceName,
		"version":     serviceVersion,
		"description": "AI-powered product information extraction from catalog images",
		"health":      "/health",
		"endpoints": gin.H{
			"POST /process-catalog": "Upload and process catalog image",
			"GET /health":           "Health check",
		},
	})
}

// ProcessCatalog handles a catalog image upload: validate the file, stage it
// to a scratch location, run the extraction/save flow, and return the
// aggregate result. The scratch file is removed on every exit path.
func (h *Handler) ProcessCatalog(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No file uploaded. Use multipart form field 'file'.",
		})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid file type. Please upload an image file (PNG, JPG, etc.)",
		})
		return
	}

	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"error":   fmt.Sprintf("File too large. Maximum size is %d bytes.", h.maxFileSize),
		})
		return
	}

	// Stage the upload to a scratch file owned by this request
	scratchPath := filepath.Join(os.TempDir(), fmt.Sprintf("catalog-%s.png", uuid.NewString()))
	if err := c.SaveUploadedFile(file, scratchPath); err != nil {
		log.Errorf("handler: failed to stage upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to store uploaded file",
		})
		return
	}
	defer func() {
		if err := os.Remove(scratchPath); err != nil && !os.IsNotExist(err) {
			log.Warnf("handler: failed to remove scratch file %s: %v", scratchPath, err)
		}
	}()

	image, err := os.ReadFile(scratchPath)
	if err != nil {
		log.Errorf("handler: failed to read scratch file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to read uploaded file",
		})
		return
	}

	response := h.catalogService.ProcessImage(c.Request.Context(), image)
	c.JSON(http.StatusOK, response)
}

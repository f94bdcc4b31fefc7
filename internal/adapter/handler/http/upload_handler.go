package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

// Uploads are capped well above typical camera output; the asset host
// enforces its own limit too.
const maxUploadBytes = 20 << 20

type UploadHandler struct {
	uploader ports.AssetUploader
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
}

func NewUploadHandler(
	uploader ports.AssetUploader,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		logger:   logger,
		metrics:  metrics,
	}
}

type UploadResponse struct {
	URL string `json:"url"`
}

// @Summary Upload image
// @Description Relay a picked image to the remote asset host and return the hosted URL
// @Tags uploads
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} UploadResponse "Hosted URL"
// @Failure 400 {object} errorResponse "No file provided"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 502 {object} errorResponse "Upload failed"
// @Router /uploads [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "No file provided")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		newErrorResponse(c, http.StatusBadRequest, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to read file")
		return
	}

	image := &domain.LocalImage{
		URI:  fileHeader.Filename,
		MIME: fileHeader.Header.Get("Content-Type"),
		Data: data,
	}

	url, err := h.uploader.Upload(c.Request.Context(), image)
	if err != nil {
		h.logger.Error("Failed to upload image", map[string]interface{}{
			"error": err.Error(),
			"file":  fileHeader.Filename,
		})
		newErrorResponse(c, http.StatusBadGateway, "Image upload failed")
		return
	}

	c.JSON(http.StatusOK, UploadResponse{URL: url})
}

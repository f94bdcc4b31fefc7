package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
	"github.com/sparegold/sparegold_catalog_service/internal/core/services"
)

type VariantHandler struct {
	variantService *services.VariantService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewVariantHandler(
	variantService *services.VariantService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VariantHandler {
	return &VariantHandler{
		variantService: variantService,
		logger:         logger,
		metrics:        metrics,
	}
}

type VariantRequest struct {
	Name    string `json:"name" binding:"required" example:"Tesla Model S"`
	Variant string `json:"variant" binding:"required" example:"Plaid"`
	Details string `json:"details" binding:"required" example:"Plaid variant with ultimate performance"`
	Image   string `json:"image"`
}

type UpdateVariantRequest struct {
	Name    *string `json:"name,omitempty"`
	Variant *string `json:"variant,omitempty"`
	Details *string `json:"details,omitempty"`
	Image   *string `json:"image,omitempty"`
}

type ListVariantsResponse struct {
	Variants []domain.Variant `json:"variants"`
	Count    int              `json:"count"`
}

// @Summary List or search variants
// @Description Without q returns the full collection; with q filters by model name or variant name
// @Tags variants
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} ListVariantsResponse "Variants"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /variants [get]
func (h *VariantHandler) ListVariants(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		h.logger.Warn("Unauthorized access attempt to ListVariants", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var variants []domain.Variant
	var err error
	if query, ok := c.GetQuery("q"); ok {
		variants, err = h.variantService.SearchVariants(c.Request.Context(), query)
	} else {
		variants, err = h.variantService.ListVariants(c.Request.Context())
	}
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list variants")
		return
	}
	if variants == nil {
		variants = []domain.Variant{}
	}

	c.JSON(http.StatusOK, ListVariantsResponse{Variants: variants, Count: len(variants)})
}

// @Summary Create variant
// @Tags variants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body VariantRequest true "Variant fields"
// @Success 201 {object} domain.Variant "Variant created"
// @Failure 400 {object} errorResponse "Missing required field"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /variants [post]
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create variant", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Please fill all fields")
		return
	}

	variant := &domain.Variant{
		Name:    req.Name,
		Variant: req.Variant,
		Details: req.Details,
		Image:   req.Image,
	}
	created, err := h.variantService.CreateVariant(c.Request.Context(), variant)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to create variant")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update variant
// @Tags variants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Variant id"
// @Param request body UpdateVariantRequest true "Fields to update"
// @Success 200 {object} domain.Variant "Variant updated"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 404 {object} errorResponse "Variant not found"
// @Router /variants/{id} [put]
func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := c.Param("id")

	var req UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update variant", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	variants, err := h.variantService.ListVariants(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load variants")
		return
	}
	var existing *domain.Variant
	for i := range variants {
		if variants[i].ID == id {
			existing = &variants[i]
			break
		}
	}
	if existing == nil {
		newErrorResponse(c, http.StatusNotFound, "Variant not found")
		return
	}

	variant := *existing
	if req.Name != nil {
		variant.Name = *req.Name
	}
	if req.Variant != nil {
		variant.Variant = *req.Variant
	}
	if req.Details != nil {
		variant.Details = *req.Details
	}
	if req.Image != nil {
		variant.Image = *req.Image
	}

	updated, err := h.variantService.UpdateVariant(c.Request.Context(), &variant)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Variant not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete variant
// @Tags variants
// @Security BearerAuth
// @Produce json
// @Param id path string true "Variant id"
// @Success 200 {object} MessageResponse "Variant deleted"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /variants/{id} [delete]
func (h *VariantHandler) DeleteVariant(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.variantService.DeleteVariant(c.Request.Context(), c.Param("id")); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Delete failed")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Variant deleted successfully"})
}

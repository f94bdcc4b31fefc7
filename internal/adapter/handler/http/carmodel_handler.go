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

type CarModelHandler struct {
	modelService *services.CarModelService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

func NewCarModelHandler(
	modelService *services.CarModelService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CarModelHandler {
	return &CarModelHandler{
		modelService: modelService,
		logger:       logger,
		metrics:      metrics,
	}
}

type CarModelRequest struct {
	Name    string `json:"name" binding:"required" example:"Tesla Model S"`
	Company string `json:"company" binding:"required" example:"Tesla"`
	Year    string `json:"year" binding:"required" example:"2022"`
	Details string `json:"details" binding:"required" example:"Flagship electric sedan"`
	Image   string `json:"image" example:"https://res.cloudinary.com/demo/image/upload/models.jpg"`
}

type UpdateCarModelRequest struct {
	Name    *string `json:"name,omitempty"`
	Company *string `json:"company,omitempty"`
	Year    *string `json:"year,omitempty"`
	Details *string `json:"details,omitempty"`
	Image   *string `json:"image,omitempty"`
}

type ListCarModelsResponse struct {
	Models []domain.CarModel `json:"models"`
	Count  int               `json:"count"`
}

// @Summary List or search car models
// @Description Without q returns the full collection; with q filters by model name, case-insensitive
// @Tags models
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} ListCarModelsResponse "Car models"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /models [get]
func (h *CarModelHandler) ListCarModels(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		h.logger.Warn("Unauthorized access attempt to ListCarModels", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var models []domain.CarModel
	var err error
	if query, ok := c.GetQuery("q"); ok {
		models, err = h.modelService.SearchCarModels(c.Request.Context(), query)
	} else {
		models, err = h.modelService.ListCarModels(c.Request.Context())
	}
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list car models")
		return
	}
	if models == nil {
		models = []domain.CarModel{}
	}

	c.JSON(http.StatusOK, ListCarModelsResponse{Models: models, Count: len(models)})
}

// @Summary Create car model
// @Tags models
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CarModelRequest true "Car model fields"
// @Success 201 {object} domain.CarModel "Car model created"
// @Failure 400 {object} errorResponse "Missing required field"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /models [post]
func (h *CarModelHandler) CreateCarModel(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CarModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create car model", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Please fill all fields")
		return
	}

	model := &domain.CarModel{
		Name:    req.Name,
		Company: req.Company,
		Year:    req.Year,
		Details: req.Details,
		Image:   req.Image,
	}
	created, err := h.modelService.CreateCarModel(c.Request.Context(), model)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to create car model")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update car model
// @Tags models
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Car model id"
// @Param request body UpdateCarModelRequest true "Fields to update"
// @Success 200 {object} domain.CarModel "Car model updated"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 404 {object} errorResponse "Car model not found"
// @Router /models/{id} [put]
func (h *CarModelHandler) UpdateCarModel(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := c.Param("id")

	var req UpdateCarModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update car model", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	models, err := h.modelService.ListCarModels(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load car models")
		return
	}
	var existing *domain.CarModel
	for i := range models {
		if models[i].ID == id {
			existing = &models[i]
			break
		}
	}
	if existing == nil {
		newErrorResponse(c, http.StatusNotFound, "Car model not found")
		return
	}

	model := *existing
	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.Company != nil {
		model.Company = *req.Company
	}
	if req.Year != nil {
		model.Year = *req.Year
	}
	if req.Details != nil {
		model.Details = *req.Details
	}
	if req.Image != nil {
		model.Image = *req.Image
	}

	updated, err := h.modelService.UpdateCarModel(c.Request.Context(), &model)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Car model not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete car model
// @Tags models
// @Security BearerAuth
// @Produce json
// @Param id path string true "Car model id"
// @Success 200 {object} MessageResponse "Car model deleted"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /models/{id} [delete]
func (h *CarModelHandler) DeleteCarModel(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.modelService.DeleteCarModel(c.Request.Context(), c.Param("id")); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Delete failed")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Car model deleted successfully"})
}

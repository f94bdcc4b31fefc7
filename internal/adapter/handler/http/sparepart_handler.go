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

type SparePartHandler struct {
	partService    *services.SparePartService
	bookingService *services.BookingService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewSparePartHandler(
	partService *services.SparePartService,
	bookingService *services.BookingService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *SparePartHandler {
	return &SparePartHandler{
		partService:    partService,
		bookingService: bookingService,
		logger:         logger,
		metrics:        metrics,
	}
}

type SparePartRequest struct {
	CarName   string `json:"carName" binding:"required" example:"Model S"`
	Brand     string `json:"brand" binding:"required" example:"Bosch"`
	CarMake   string `json:"carMake" binding:"required" example:"Tesla"`
	SpareName string `json:"spareName" binding:"required" example:"Brake Pad Set"`
	Year      string `json:"year" binding:"required" example:"2022"`
	Price     string `json:"price" binding:"required" example:"4500.00"`
	Image     string `json:"image"`
}

type UpdateSparePartRequest struct {
	CarName   *string `json:"carName,omitempty"`
	Brand     *string `json:"brand,omitempty"`
	CarMake   *string `json:"carMake,omitempty"`
	SpareName *string `json:"spareName,omitempty"`
	Year      *string `json:"year,omitempty"`
	Price     *string `json:"price,omitempty"`
	Image     *string `json:"image,omitempty"`
}

type ListSparePartsResponse struct {
	SpareParts []domain.SparePart `json:"spareParts"`
	Count      int                `json:"count"`
}

type BookSparePartRequest struct {
	CustomerName string `json:"customerName" binding:"required" example:"A. Kumar"`
	Address      string `json:"address" binding:"required" example:"12 MG Road, Pune"`
	Mobile       string `json:"mobile" binding:"required" example:"9876543210"`
}

// @Summary List or search spare parts
// @Tags spareparts
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} ListSparePartsResponse "Spare parts"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /spareparts [get]
func (h *SparePartHandler) ListSpareParts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var parts []domain.SparePart
	var err error
	if query, ok := c.GetQuery("q"); ok {
		parts, err = h.partService.SearchSpareParts(c.Request.Context(), query)
	} else {
		parts, err = h.partService.ListSpareParts(c.Request.Context())
	}
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list spare parts")
		return
	}
	if parts == nil {
		parts = []domain.SparePart{}
	}

	c.JSON(http.StatusOK, ListSparePartsResponse{SpareParts: parts, Count: len(parts)})
}

// @Summary Create spare part
// @Tags spareparts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SparePartRequest true "Spare part fields"
// @Success 201 {object} domain.SparePart "Spare part created"
// @Failure 400 {object} errorResponse "Missing required field"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /spareparts [post]
func (h *SparePartHandler) CreateSparePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create spare part", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Please fill all fields")
		return
	}

	part := &domain.SparePart{
		CarName:   req.CarName,
		Brand:     req.Brand,
		CarMake:   req.CarMake,
		SpareName: req.SpareName,
		Year:      req.Year,
		Price:     req.Price,
		Image:     req.Image,
	}
	created, err := h.partService.CreateSparePart(c.Request.Context(), part)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to create spare part")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update spare part
// @Tags spareparts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Spare part id"
// @Param request body UpdateSparePartRequest true "Fields to update"
// @Success 200 {object} domain.SparePart "Spare part updated"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 404 {object} errorResponse "Spare part not found"
// @Router /spareparts/{id} [put]
func (h *SparePartHandler) UpdateSparePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := c.Param("id")

	var req UpdateSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update spare part", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	parts, err := h.partService.ListSpareParts(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load spare parts")
		return
	}
	var existing *domain.SparePart
	for i := range parts {
		if parts[i].ID == id {
			existing = &parts[i]
			break
		}
	}
	if existing == nil {
		newErrorResponse(c, http.StatusNotFound, "Spare part not found")
		return
	}

	part := *existing
	if req.CarName != nil {
		part.CarName = *req.CarName
	}
	if req.Brand != nil {
		part.Brand = *req.Brand
	}
	if req.CarMake != nil {
		part.CarMake = *req.CarMake
	}
	if req.SpareName != nil {
		part.SpareName = *req.SpareName
	}
	if req.Year != nil {
		part.Year = *req.Year
	}
	if req.Price != nil {
		part.Price = *req.Price
	}
	if req.Image != nil {
		part.Image = *req.Image
	}

	updated, err := h.partService.UpdateSparePart(c.Request.Context(), &part)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Spare part not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete spare part
// @Tags spareparts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Spare part id"
// @Success 200 {object} MessageResponse "Spare part deleted"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /spareparts/{id} [delete]
func (h *SparePartHandler) DeleteSparePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.partService.DeleteSparePart(c.Request.Context(), c.Param("id")); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Delete failed")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Spare part deleted successfully"})
}

// @Summary Book spare part
// @Description Create a booking for a catalog part; part details are copied onto the booking
// @Tags spareparts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Spare part id"
// @Param request body BookSparePartRequest true "Customer details"
// @Success 201 {object} domain.Booking "Booking confirmed"
// @Failure 400 {object} errorResponse "Missing required field"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 404 {object} errorResponse "Spare part not found"
// @Router /spareparts/{id}/bookings [post]
func (h *SparePartHandler) BookSparePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req BookSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in book spare part", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Please fill all fields")
		return
	}

	booking, err := h.bookingService.BookSparePart(
		c.Request.Context(), c.Param("id"), req.CustomerName, req.Address, req.Mobile)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Spare part not found")
			return
		}
		newErrorResponse(c, http.StatusBadRequest, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

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

type BookingHandler struct {
	bookingService *services.BookingService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewBookingHandler(
	bookingService *services.BookingService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
		metrics:        metrics,
	}
}

type BookingRequest struct {
	CustomerName string `json:"customerName" binding:"required" example:"A. Kumar"`
	Address      string `json:"address" binding:"required" example:"12 MG Road, Pune"`
	Mobile       string `json:"mobile" binding:"required" example:"9876543210"`
	SpareName    string `json:"spareName" binding:"required" example:"Brake Pad Set"`
	CarName      string `json:"carName" binding:"required" example:"Model S"`
	CarMake      string `json:"carMake" binding:"required" example:"Tesla"`
	Price        string `json:"price" binding:"required" example:"4500.00"`
}

type ListBookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Count    int              `json:"count"`
}

// @Summary List bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ListBookingsResponse "Bookings"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	c.JSON(http.StatusOK, ListBookingsResponse{Bookings: bookings, Count: len(bookings)})
}

// @Summary Create booking
// @Description Record a booking with explicit part details
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking fields"
// @Success 201 {object} domain.Booking "Booking confirmed"
// @Failure 400 {object} errorResponse "Missing required field"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create booking", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Please fill all fields")
		return
	}

	booking := &domain.Booking{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Mobile:       req.Mobile,
		SpareName:    req.SpareName,
		CarName:      req.CarName,
		CarMake:      req.CarMake,
		Price:        req.Price,
	}
	created, err := h.bookingService.CreateBooking(c.Request.Context(), booking)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Delete booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} MessageResponse "Booking deleted"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Delete failed")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Booking deleted successfully"})
}

// @Summary Booking receipt
// @Description Priced receipt document for a booking, rendered as HTML
// @Tags bookings
// @Security BearerAuth
// @Produce html
// @Param id path string true "Booking id"
// @Success 200 {string} string "Receipt HTML"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 404 {object} errorResponse "Booking not found"
// @Router /bookings/{id}/receipt [get]
func (h *BookingHandler) GetReceipt(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookingID := c.Param("id")
	receipt, err := h.bookingService.GenerateReceipt(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Booking not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	html, err := receipt.RenderHTML()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to render receipt")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

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

type CompanyHandler struct {
	companyService *services.CompanyService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewCompanyHandler(
	companyService *services.CompanyService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		logger:         logger,
		metrics:        metrics,
	}
}

type CompanyRequest struct {
	Name  string `json:"name" binding:"required" example:"Tesla"`
	Image string `json:"image" binding:"required" example:"https://res.cloudinary.com/demo/image/upload/tesla.jpg"`
}

type UpdateCompanyRequest struct {
	Name  *string `json:"name,omitempty" example:"Tesla Motors"`
	Image *string `json:"image,omitempty"`
}

type ListCompaniesResponse struct {
	Companies []domain.Company `json:"companies"`
	Count     int              `json:"count"`
}

// @Summary List companies
// @Description List all automotive companies
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ListCompaniesResponse "Companies"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		h.logger.Warn("Unauthorized access attempt to ListCompanies", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list companies")
		return
	}
	if companies == nil {
		companies = []domain.Company{}
	}

	c.JSON(http.StatusOK, ListCompaniesResponse{Companies: companies, Count: len(companies)})
}

// @Summary Create company
// @Description Add a new automotive company
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CompanyRequest true "Company fields"
// @Success 201 {object} domain.Company "Company created"
// @Failure 400 {object} errorResponse "Missing required field"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create company", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Please provide both company name and image")
		return
	}

	company := &domain.Company{Name: req.Name, Image: req.Image}
	created, err := h.companyService.CreateCompany(c.Request.Context(), company)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to create company")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update company
// @Description Update company fields; omitted fields are left unchanged
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Company id"
// @Param request body UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} domain.Company "Company updated"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 404 {object} errorResponse "Company not found"
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := c.Param("id")

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update company", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load companies")
		return
	}
	var existing *domain.Company
	for i := range companies {
		if companies[i].ID == id {
			existing = &companies[i]
			break
		}
	}
	if existing == nil {
		newErrorResponse(c, http.StatusNotFound, "Company not found")
		return
	}

	company := *existing
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Image != nil {
		company.Image = *req.Image
	}

	updated, err := h.companyService.UpdateCompany(c.Request.Context(), &company)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Company not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete company
// @Description Delete a company; deleting an unknown id is a no-op
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Param id path string true "Company id"
// @Success 200 {object} MessageResponse "Company deleted"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Delete failed")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Company deleted successfully"})
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
	"github.com/sparegold/sparegold_catalog_service/internal/core/services"
)

type ProfileHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewProfileHandler(
	authService *services.AuthService,
	profileService *services.ProfileService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ProfileHandler {
	return &ProfileHandler{
		authService:    authService,
		profileService: profileService,
		logger:         logger,
		metrics:        metrics,
	}
}

type ProfileResponse struct {
	User        *domain.User `json:"user,omitempty"`
	EmailPrefix string       `json:"emailPrefix"`
	DarkMode    bool         `json:"darkMode"`
}

type PreferencesRequest struct {
	DarkMode bool `json:"darkMode"`
}

type PreferencesResponse struct {
	DarkMode bool `json:"darkMode"`
}

// @Summary Get profile
// @Description Current user mirror plus display preferences
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ProfileResponse "Profile"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	darkMode, err := h.profileService.DarkMode(c.Request.Context())
	if err != nil {
		h.logger.Warn("Failed to load dark mode preference", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.JSON(http.StatusOK, ProfileResponse{
		User:        user,
		EmailPrefix: user.EmailPrefix(),
		DarkMode:    darkMode,
	})
}

// @Summary Get preferences
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} PreferencesResponse "Preferences"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /profile/preferences [get]
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	darkMode, err := h.profileService.DarkMode(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	c.JSON(http.StatusOK, PreferencesResponse{DarkMode: darkMode})
}

// @Summary Update preferences
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PreferencesRequest true "Preferences"
// @Success 200 {object} PreferencesResponse "Preferences updated"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /profile/preferences [put]
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if err := h.profileService.SetDarkMode(c.Request.Context(), req.DarkMode); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, PreferencesResponse{DarkMode: req.DarkMode})
}

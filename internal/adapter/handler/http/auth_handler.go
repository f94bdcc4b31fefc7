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

type AuthHandler struct {
	authService  *services.AuthService
	tokenService ports.TokenService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

func NewAuthHandler(
	authService *services.AuthService,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		logger:       logger,
		metrics:      metrics,
	}
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required" example:"buyer@sparegold.in"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// @Summary Sign in
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} SessionResponse "Signed in"
// @Failure 400 {object} errorResponse "Invalid credentials format"
// @Failure 401 {object} errorResponse "Authentication failed"
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in sign in", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEmail) || errors.Is(err, services.ErrInvalidPassword) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		newErrorResponse(c, http.StatusUnauthorized, domain.FriendlyAuthMessage(err))
		return
	}

	token, err := h.tokenService.IssueToken(user)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Token: token, User: user})
}

// @Summary Sign up
// @Description Create an account and sign in with the same credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 201 {object} SessionResponse "Account created"
// @Failure 400 {object} errorResponse "Invalid credentials format"
// @Failure 409 {object} errorResponse "Email already in use"
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in sign up", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) && authErr.Code == domain.CodeEmailAlreadyInUse {
			// Sign-up surfaces the raw provider message.
			newErrorResponse(c, http.StatusConflict, authErr.Message)
			return
		}
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.tokenService.IssueToken(user)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Token: token, User: user})
}

// @Summary Sign out
// @Description End the session and clear the persisted user mirror
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MessageResponse "Signed out"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.authService.SignOut(c.Request.Context()); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to sign out")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Signed out successfully"})
}

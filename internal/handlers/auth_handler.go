package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetdash/internal/models"
	"budgetdash/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService services.AuthServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginResponse represents the login response
type LoginResponse struct {
	Message string            `json:"message"`
	Session models.AuthStatus `json:"session"`
}

// Register handles account registration
// @Summary     Register a new account
// @Description Create an account on the budget service. Does not log in.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.Registration true "Account details"
// @Success     201 {object} MessageResponse "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Budget service rejected the request"
// @Failure     503 {object} ErrorResponse "Budget service unreachable"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.Registration
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.authService.Register(c.Request.Context(), req); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Registration successful! Please log in."})
}

// Login handles user login
// @Summary     Log in
// @Description Exchange credentials for a session held by this server
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.Credentials true "Login credentials"
// @Success     200 {object} LoginResponse "Logged in"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     503 {object} ErrorResponse "Budget service unreachable"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.Credentials
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Message: "Login successful!", Session: *status})
}

// Logout handles user logout
// @Summary     Log out
// @Description Clear the stored session
// @Tags        auth
// @Produce     json
// @Success     200 {object} MessageResponse "Logged out"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully."})
}

// Status reports whether a session is stored
// @Summary     Session status
// @Description Report whether a session is stored, without contacting the budget service
// @Tags        auth
// @Produce     json
// @Success     200 {object} models.AuthStatus "Session status"
// @Router      /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.authService.Status(c.Request.Context()))
}

// GetProfile returns the account of the current session
// @Summary     Get profile
// @Description Verify the session with the budget service and return the account
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]models.Profile "Account"
// @Failure     401 {object} ErrorResponse "Session expired"
// @Failure     503 {object} ErrorResponse "Budget service unreachable"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	profile, err := h.authService.Profile(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

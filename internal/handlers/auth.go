package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-service/internal/middleware"
	"github.com/smartattend/attendance-service/internal/models"
	"github.com/smartattend/attendance-service/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request payload. Email doubles as the
// identifier field; HOD and faculty logins also accept a display name here.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HODLogin godoc
// @Summary HOD login
// @Description Authenticate a head of department and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/hod/login [post]
func (h *AuthHandler) HODLogin(c *gin.Context) {
	h.login(c, models.RoleHOD)
}

// FacultyLogin godoc
// @Summary Faculty login
// @Description Authenticate a faculty member and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/faculty/login [post]
func (h *AuthHandler) FacultyLogin(c *gin.Context) {
	h.login(c, models.RoleFaculty)
}

// StudentLogin godoc
// @Summary Student login
// @Description Authenticate a student and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/student/login [post]
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	h.login(c, models.RoleStudent)
}

// login runs the shared login flow for one role scope. Every authentication
// failure, including store errors, produces the same generic 401 so the
// response cannot be used to enumerate identifiers.
func (h *AuthHandler) login(c *gin.Context, role models.Role) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), role, req.Email, req.Password)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		LogAndRespondError(c, http.StatusUnauthorized, err, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary Logout
// @Description Revoke the presented bearer token for its remaining lifetime
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractBearerToken(c)
	if token == "" {
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		LogAndRespondError(c, http.StatusUnauthorized, err, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

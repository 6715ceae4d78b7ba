package auth

import (
	"errors"
	"net/http"

	apperrors "bugbounty-platform-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for signup and login
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupHacker handles POST /auth/hackers/signup
// @Summary Register a hacker account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body HackerSignupRequest true "Signup payload"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 409 {object} map[string]interface{} "Username or email already taken"
// @Router /auth/hackers/signup [post]
func (h *AuthHandler) SignupHacker(c *gin.Context) {
	var req HackerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.SignupHacker(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHacker handles POST /auth/hackers/login
// @Summary Log in as a hacker
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/hackers/login [post]
func (h *AuthHandler) LoginHacker(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.LoginHacker(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignupCompany handles POST /auth/companies/signup
// @Summary Register a company account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CompanySignupRequest true "Signup payload"
// @Success 201 {object} TokenResponse
// @Failure 409 {object} map[string]interface{} "Email already taken"
// @Router /auth/companies/signup [post]
func (h *AuthHandler) SignupCompany(c *gin.Context) {
	var req CompanySignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.SignupCompany(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginCompany handles POST /auth/companies/login
// @Summary Log in as a company
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/companies/login [post]
func (h *AuthHandler) LoginCompany(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.LoginCompany(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}

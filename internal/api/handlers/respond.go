package handlers

import (
	"errors"
	"net/http"

	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses. Every
// handler funnels service errors through here so the mapping stays in
// one place.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsInvalidTransition(err), errors.Is(err, apperrors.ErrStatusConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}

// resolveCaller maps the authenticated principal to a caller identity,
// writing the error response itself on failure
func resolveCaller(c *gin.Context, access service.AccessServiceInterface, principal string) (*service.Caller, bool) {
	caller, err := access.ResolveCaller(principal)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return caller, true
}

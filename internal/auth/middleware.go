package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by the authentication middleware
const (
	ContextPrincipal = "principal"
	ContextKind      = "kind"
	ContextClaims    = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and sets the principal context.
// The principal is only a claim here; resolving it to a hacker or
// company happens in the service layer.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, claims.Principal)
		c.Set(ContextKind, claims.Kind)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// Principal returns the authenticated principal name from the request
// context, or empty when the request is unauthenticated
func Principal(c *gin.Context) string {
	principal, _ := c.Get(ContextPrincipal)
	if s, ok := principal.(string); ok {
		return s
	}
	return ""
}

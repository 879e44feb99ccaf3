package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		// Set user context
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("region", claims.Region)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the Gin context
func GetUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}

// GetEmail returns the authenticated user's email from the Gin context
func GetEmail(c *gin.Context) (string, bool) {
	email, ok := c.Get("email")
	if !ok {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}

// GetRegion returns the authenticated user's region from the Gin context
func GetRegion(c *gin.Context) (string, bool) {
	region, ok := c.Get("region")
	if !ok {
		return "", false
	}
	s, ok := region.(string)
	return s, ok
}

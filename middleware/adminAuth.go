package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator validates admin bearer tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) error
}

// ErrSessionCheck marks authenticator failures that are not the caller's fault.
var ErrSessionCheck = errors.New("session check failed")

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// AdminAuthMiddleware rejects requests without a live admin session.
func AdminAuthMiddleware(auth Authenticator, isUnauthorized func(error) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		if err := auth.Authenticate(c.Request.Context(), token); err != nil {
			if isUnauthorized(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
				return
			}
			zap.L().Error("admin session check failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": ErrSessionCheck.Error()})
			return
		}

		c.Set("adminToken", token)
		c.Set("isAdmin", true)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"minbar/internal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey  = "user_id"
	ContextIsAdminKey = "is_admin"
)

func extractClaims(c *gin.Context) (*pkg.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
		c.Abort()
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
		c.Abort()
		return nil, false
	}

	claims, err := pkg.ParseToken(parts[1])
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
		c.Abort()
		return nil, false
	}
	return claims, true
}

// Auth is the user tier: any valid token passes. The subject id and
// admin flag are injected into the request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractClaims(c)
		if !ok {
			return
		}
		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextIsAdminKey, claims.Admin)
		c.Next()
	}
}

// AdminAuth is the admin tier: the token must additionally carry the
// admin claim. Non-admins get the same 401 as missing credentials.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractClaims(c)
		if !ok {
			return
		}
		if !claims.Admin {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "admin required"})
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextIsAdminKey, true)
		c.Next()
	}
}

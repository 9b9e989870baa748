package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mentorhub-chat/auth"
)

// Auth guards every route that touches message data. It runs before
// any handler logic: no token means unauthorized, a bad or expired
// token means invalid, and both answers share the same status and
// shape so callers cannot tell which check failed.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

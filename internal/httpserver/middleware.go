package httpserver

import (
	"net/http"
	"strings"

	"buildmart/internal/domain"

	"github.com/gin-gonic/gin"
)

const operatorKey = "operator"

// requireAuth guards admin routes with a bearer session token.
func requireAuth(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		user, ok := auth.Validate(c.Request.Context(), token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.Set(operatorKey, user)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// currentOperator returns the authenticated user set by requireAuth.
func currentOperator(c *gin.Context) *domain.User {
	if v, ok := c.Get(operatorKey); ok {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}

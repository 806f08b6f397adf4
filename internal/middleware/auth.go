package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/p-aks/EventManagement/internal/auth"
)

// Auth validates the bearer token and stores the caller identity in the
// request context for downstream handlers.
func Auth(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or malformed authorization header"},
			)
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", string(claims.Role))

		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role does not match.
func RequireRole(role string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "insufficient permissions"},
			)
			return
		}

		c.Next()
	}
}

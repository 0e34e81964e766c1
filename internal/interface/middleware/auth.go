package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gearshare/gearshare/pkg/helpers"
	"github.com/gearshare/gearshare/pkg/response"
)

const (
	ctxUserIDKey = "userID"
	ctxEmailKey  = "userEmail"
)

// BearerAuth extracts the bearer token from the Authorization header,
// verifies it against the codec, and attaches the decoded identity to the
// request context. This is the only path that populates a request identity.
// Missing and invalid tokens both reject with 401; 403 is reserved for
// ownership failures inside handlers.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing token", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", nil)
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxEmailKey, claims.Email)
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

// UserID returns the verified identity attached by BearerAuth.
// The bool is false on routes that never passed through the gate.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// UserEmail returns the email claim of the verified identity.
func UserEmail(c *gin.Context) string {
	return c.GetString(ctxEmailKey)
}

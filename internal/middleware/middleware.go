package middleware

import (
	"strings"

	"condopay-srv/pkg/response"
	"condopay-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth returns a middleware that validates JWT tokens and sets the payload
// in context. The token is taken from the Authorization header, or from the
// "token" query parameter as a fallback for EventSource clients, which
// cannot set custom headers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			m.l.Warnf(c.Request.Context(), "Missing credentials | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtMgr.Verify(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin returns a middleware that rejects non-admin tokens. It must
// run after Auth.
func (m Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := scope.GetPayloadFromContext(c.Request.Context())
		if !ok || payload.Role != scope.RoleAdmin {
			m.l.Warnf(c.Request.Context(), "Admin access denied | Path: %s", c.Request.URL.Path)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	const bearerPrefix = "Bearer "

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimSpace(authHeader[len(bearerPrefix):])
	}
	return c.Query("token")
}

package middleware

import (
	"net/http"
	"strings"

	"jpereira7/Trivia-Night/internal/api/response"
	"jpereira7/Trivia-Night/internal/api/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Context keys under which the authenticated identity is stored.
const (
	UserIDKey   = "userId"
	UsernameKey = "username"
)

var meter = otel.Meter("api.middleware")

// AuthRequired verifies the bearer token before the request reaches any
// handler. A missing token is 401; a present but invalid or expired token
// is 403. On success the identity claims land in the gin context.
func AuthRequired(tokens service.TokenService) gin.HandlerFunc {
	authFailures, _ := meter.Int64Counter("auth.failures",
		metric.WithDescription("Requests rejected by the bearer-token check"))

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			authFailures.Add(c.Request.Context(), 1)
			response.ErrorResponse(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			authFailures.Add(c.Request.Context(), 1)
			response.ErrorResponse(c, http.StatusUnauthorized, "Invalid Authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			authFailures.Add(c.Request.Context(), 1)
			response.ErrorResponse(c, http.StatusForbidden, "Invalid token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}

// UserID pulls the authenticated user id out of the gin context.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

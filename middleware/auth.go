package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"backend_tigo/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	SessionIDKey = "session_id"
	UserIDKey    = "user_id"
	TokenKey     = "token"
)

// SessionChecker answers whether a token belongs to an active session
type SessionChecker interface {
	Active(ctx context.Context, token string) (*services.Session, error)
}

// BearerToken extracts the token from the Authorization header
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

// RequireSession lets a request through only while its session is active.
// The token's contents are not interpreted beyond that.
func RequireSession(sessions SessionChecker, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "error",
				"error":  "Authorization header is required",
			})
			return
		}

		session, err := sessions.Active(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, services.ErrSessionNotFound) {
				logger.WithError(err).Error("session lookup failed")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "error",
				"error":  "No active session",
			})
			return
		}

		c.Set(SessionIDKey, session.ID)
		c.Set(UserIDKey, session.UserID)
		c.Set(TokenKey, token)
		c.Next()
	}
}

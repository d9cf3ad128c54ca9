package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backend_tigo/database"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimitConfig configures fixed-window rate limiting
type RateLimitConfig struct {
	Requests     int
	Window       time.Duration
	KeyGenerator func(*gin.Context) string
}

// DefaultKeyGenerator keys requests by client IP
func DefaultKeyGenerator(c *gin.Context) string {
	return c.ClientIP()
}

// SessionKeyGenerator keys requests by session, falling back to client IP
func SessionKeyGenerator(c *gin.Context) string {
	if sessionID := c.GetString(SessionIDKey); sessionID != "" {
		return "session:" + sessionID
	}
	return c.ClientIP()
}

// RateLimit rejects requests above the configured rate with 429.
// When Redis is unavailable requests pass through.
func RateLimit(client *redis.Client, config RateLimitConfig, logger *logrus.Logger) gin.HandlerFunc {
	if config.KeyGenerator == nil {
		config.KeyGenerator = DefaultKeyGenerator
	}

	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		allowed, err := database.RateLimitCheck(c.Request.Context(), client, config.KeyGenerator(c), int64(config.Requests), config.Window)
		if err != nil {
			logger.WithError(err).Warn("rate limit check failed, letting request through")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Requests))
		if !allowed {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(int(config.Window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status": "error",
				"error": fmt.Sprintf("Too many requests. Limit: %d requests per %v",
					config.Requests, config.Window),
			})
			return
		}

		c.Next()
	}
}

// AuthRateLimit is the limit for the login endpoint
func AuthRateLimit(client *redis.Client, logger *logrus.Logger) gin.HandlerFunc {
	return RateLimit(client, RateLimitConfig{
		Requests: 5,
		Window:   time.Minute,
		KeyGenerator: func(c *gin.Context) string {
			return "login:" + c.ClientIP()
		},
	}, logger)
}

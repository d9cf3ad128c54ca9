package testutils

import (
	"io"
	"testing"
	"time"

	"backend_tigo/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// SetupTestRedis starts an in-process Redis that is stopped with the test
func SetupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

// SetupTestConfig returns a configuration for tests, backed by sqlite
func SetupTestConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Env: "test", Port: "0"},
		Database: config.DatabaseConfig{Type: "sqlite", Path: ":memory:"},
		Session: config.SessionConfig{
			Secret:    "test-secret-key-for-testing-only",
			ExpiresIn: time.Hour,
			Issuer:    "tigo-gestion",
			Channel:   "session_events",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Confirm-Delete"},
		},
		Security: config.SecurityConfig{RateLimitRequests: 100, RateLimitWindow: time.Minute},
		Logging:  config.LoggingConfig{Level: "error", Format: "json"},
		Reports:  config.ReportsConfig{RefreshSpec: "@every 5m"},
		Admin:    config.AdminConfig{Username: "admin", Password: "admin123", Name: "Administrador"},
	}
}

// NewTestLogger returns a logger that discards its output
func NewTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

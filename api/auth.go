package api

import (
	"io"
	"net/http"

	"backend_tigo/middleware"
	"backend_tigo/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoginRequest is the sign-in payload
type LoginRequest struct {
	Usuario  string `json:"usuario" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthAPI exposes the session collaborator
type AuthAPI struct {
	sessions *services.SessionService
	logger   *logrus.Logger
}

func NewAuthAPI(sessions *services.SessionService, logger *logrus.Logger) *AuthAPI {
	return &AuthAPI{sessions: sessions, logger: logger}
}

// RegisterRoutes mounts the public auth routes. protected is the group
// already behind RequireSession.
func (aa *AuthAPI) RegisterRoutes(public, protected *gin.RouterGroup, loginLimit gin.HandlerFunc) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", loginLimit, aa.Login)
		auth.POST("/logout", aa.Logout)
		auth.GET("/session", aa.GetSession)
	}
	protected.GET("/auth/events", aa.Events)
}

// Login godoc
// POST /api/auth/login
func (aa *AuthAPI) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid username or password")
		return
	}

	token, session, err := aa.sessions.SignIn(c.Request.Context(), req.Usuario, req.Password)
	if err != nil {
		aa.logger.WithFields(logrus.Fields{
			"usuario":   req.Usuario,
			"client_ip": c.ClientIP(),
		}).Warn("login rejected")
		respondFailure(c, aa.logger, "Login", err)
		return
	}

	aa.logger.WithField("user_id", session.UserID).Info("user signed in")
	respondSuccess(c, http.StatusOK, gin.H{
		"token":   token,
		"session": session,
	})
}

// Logout godoc
// POST /api/auth/logout
func (aa *AuthAPI) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		respondError(c, http.StatusUnauthorized, "Authorization header is required")
		return
	}

	if err := aa.sessions.SignOut(c.Request.Context(), token); err != nil {
		respondFailure(c, aa.logger, "Logout", err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "Signed out"})
}

// GetSession godoc
// GET /api/auth/session
// Answers whether the caller holds an active session; absence is not an error.
func (aa *AuthAPI) GetSession(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		respondSuccess(c, http.StatusOK, gin.H{"active": false})
		return
	}

	session, err := aa.sessions.Active(c.Request.Context(), token)
	if err != nil {
		if err != services.ErrSessionNotFound {
			respondFailure(c, aa.logger, "GetSession", err)
			return
		}
		respondSuccess(c, http.StatusOK, gin.H{"active": false})
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"active": true, "session": session})
}

// Events godoc
// GET /api/auth/events
// Streams login and logout events as server-sent events until the client leaves.
func (aa *AuthAPI) Events(c *gin.Context) {
	events, err := aa.sessions.Subscribe(c.Request.Context())
	if err != nil {
		respondFailure(c, aa.logger, "Events", err)
		return
	}

	c.Stream(func(w io.Writer) bool {
		event, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent(event.Type, event)
		return true
	})
}

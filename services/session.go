package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend_tigo/config"
	"backend_tigo/models"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionLogin  = "login"
	SessionLogout = "logout"
)

// SessionClaims are the claims of a session token. The token ID names the
// Redis key that keeps the session alive.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Session is an active session
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionEvent is published on every login and logout
type SessionEvent struct {
	Type    string    `json:"type"`
	UserID  string    `json:"user_id"`
	Usuario string    `json:"usuario,omitempty"`
	At      time.Time `json:"at"`
}

// SessionService signs users in and out and answers whether a session is active
type SessionService struct {
	store  Store
	redis  *redis.Client
	cfg    config.SessionConfig
	logger *logrus.Logger
}

func NewSessionService(store Store, client *redis.Client, cfg config.SessionConfig, logger *logrus.Logger) *SessionService {
	return &SessionService{store: store, redis: client, cfg: cfg, logger: logger}
}

func sessionKey(id string) string {
	return "session:" + id
}

// SignIn checks the credentials of an active user and opens a session
func (s *SessionService) SignIn(ctx context.Context, login, password string) (string, *Session, error) {
	var users []models.Usuario
	if err := s.store.SelectWhere(ctx, "usuarios", "usuario", login, &users); err != nil {
		return "", nil, &FetchError{Table: "usuarios", Err: err}
	}
	if len(users) == 0 {
		return "", nil, ErrInvalidCredentials
	}
	user := users[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Estado {
		return "", nil, ErrUserInactive
	}

	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.cfg.ExpiresIn),
	}

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   user.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(session.ID), user.ID, s.cfg.ExpiresIn).Err(); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.publish(ctx, SessionEvent{Type: SessionLogin, UserID: user.ID, Usuario: user.Usuario, At: now})
	return token, session, nil
}

func (s *SessionService) parse(token string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer))
	if err != nil {
		return nil, ErrSessionNotFound
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return nil, ErrSessionNotFound
	}
	return claims, nil
}

// Active returns the session behind token, or ErrSessionNotFound when there is none
func (s *SessionService) Active(ctx context.Context, token string) (*Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	userID, err := s.redis.Get(ctx, sessionKey(claims.ID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	return &Session{ID: claims.ID, UserID: userID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// SignOut ends the session behind token
func (s *SessionService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}

	deleted, err := s.redis.Del(ctx, sessionKey(claims.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}

	s.publish(ctx, SessionEvent{Type: SessionLogout, UserID: claims.Subject, At: time.Now()})
	return nil
}

func (s *SessionService) publish(ctx context.Context, event SessionEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.redis.Publish(ctx, s.cfg.Channel, payload).Err(); err != nil {
		config.LogError(s.logger, "services", "SessionService.publish", event.Type, event.UserID, err)
	}
}

// Subscribe delivers login and logout events until ctx is done.
// The returned channel is closed when the subscription ends.
func (s *SessionService) Subscribe(ctx context.Context) (<-chan SessionEvent, error) {
	pubsub := s.redis.Subscribe(ctx, s.cfg.Channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", s.cfg.Channel, err)
	}

	events := make(chan SessionEvent)
	go func() {
		defer close(events)
		defer func() { _ = pubsub.Close() }()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event SessionEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					s.logger.WithError(err).Warn("ignoring malformed session event")
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

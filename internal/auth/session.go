package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Session is one issued token and what it grants.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"` // zero means the token never expires
}

// Store is the persistence contract for sessions. Implementations: in-memory
// (default, sessions die with the process) and Redis.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
}

// Manager mints and validates opaque session tokens against a backing store.
// It is injected into the login handler and the auth middleware instead of
// living as process-global state.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager builds a Manager. ttl <= 0 disables expiry.
func NewManager(store Store, ttl time.Duration) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Manager{store: store, ttl: ttl}
}

// TTL reports the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create issues a fresh token for the user and records it in the store.
func (m *Manager) Create(ctx context.Context, userID int64) (string, error) {
	token, err := generateToken(32)
	if err != nil {
		return "", err
	}

	now := time.Now()
	s := Session{
		Token:    token,
		UserID:   userID,
		IssuedAt: now,
	}
	if m.ttl > 0 {
		s.ExpiresAt = now.Add(m.ttl)
	}

	if err := m.store.Save(ctx, s); err != nil {
		return "", err
	}
	return token, nil
}

// Validate resolves a token to its user. Expired tokens are deleted on sight.
func (m *Manager) Validate(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	s, ok, err := m.store.Get(ctx, token)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}

	if !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt) {
		_ = m.store.Delete(ctx, token)
		return 0, false, nil
	}

	return s.UserID, true, nil
}

// Revoke removes a token from the store.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Ping checks the backing store when it exposes a ping method.
func (m *Manager) Ping(ctx context.Context) error {
	if pinger, ok := m.store.(interface{ Ping(context.Context) error }); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

func generateToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

package session

import (
	"sync"
	"time"

	"littlelemon/internal/cart"

	"github.com/google/uuid"
)

type sessionMeta struct {
	Cart      *cart.Store
	ExpiresAt time.Time
}

type sessionManager struct {
	mu       sync.Mutex
	now      func() time.Time
	sessions map[string]sessionMeta
}

func newSessionManager(now func() time.Time) *sessionManager {
	return &sessionManager{
		now:      now,
		sessions: make(map[string]sessionMeta),
	}
}

func (m *sessionManager) Issue(ttl time.Duration) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	token := id.String()
	m.mu.Lock()
	m.sessions[token] = sessionMeta{Cart: cart.NewStore(), ExpiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return token, nil
}

// Touch returns the cart for token and pushes its expiry ttl into the future.
// Expired sessions are removed.
func (m *sessionManager) Touch(token string, ttl time.Duration) (*cart.Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.sessions[token]
	if !ok {
		return nil, false
	}
	now := m.now()
	if !now.Before(meta.ExpiresAt) {
		delete(m.sessions, token)
		return nil, false
	}
	meta.ExpiresAt = now.Add(ttl)
	m.sessions[token] = meta
	return meta.Cart, true
}

func (m *sessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

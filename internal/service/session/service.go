package session

import (
	"context"
	"strings"
	"time"

	"littlelemon/internal/cart"
	"littlelemon/internal/domain"
)

const defaultTTL = 3 * time.Hour

// Service hands out browsing sessions, each owning one in-memory cart.
type Service struct {
	sessions *sessionManager
	ttl      time.Duration
}

func New(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{sessions: newSessionManager(time.Now), ttl: ttl}
}

// Issue starts a session with an empty cart and returns its bearer token.
func (s *Service) Issue(_ context.Context) (string, error) {
	return s.sessions.Issue(s.ttl)
}

// Lookup returns the cart for token, extending the session. Unknown or idle tokens
// yield domain.ErrSessionExpired.
func (s *Service) Lookup(_ context.Context, token string) (*cart.Store, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrSessionExpired
	}
	store, ok := s.sessions.Touch(token, s.ttl)
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	return store, nil
}

func (s *Service) TTLSeconds() int {
	return int(s.ttl.Seconds())
}

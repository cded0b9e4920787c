package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/avin-dsouza/Digital-Library/pkg/models"
)

// Sessions tracks authenticated identities across requests. Tokens are
// opaque to callers and sessions persist until an explicit End.
type Sessions struct {
	mu     sync.RWMutex
	active map[string]models.Identity
}

// NewSessions creates an empty session manager.
func NewSessions() *Sessions {
	return &Sessions{
		active: make(map[string]models.Identity),
	}
}

// Start establishes a session bound to the given identity and returns
// its token.
func (s *Sessions) Start(userID int64, username string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active[token] = models.Identity{
		UserID:   userID,
		Username: username,
	}
	return token
}

// Identity returns the identity bound to the token, if any.
func (s *Sessions) Identity(token string) (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, ok := s.active[token]
	return identity, ok
}

// End clears the binding for the token. Ending an unknown token is a no-op.
func (s *Sessions) End(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.active, token)
}

package repository

import (
	"context"
	"sync"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// MemorySessionRepo keeps sessions in process memory. Suitable for local
// development and tests; sessions do not survive a restart.
type MemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionRepo creates an empty in-memory session repository
func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{
		sessions: make(map[string]models.Session),
	}
}

// Save persists a session under its token.
func (r *MemorySessionRepo) Save(_ context.Context, token string, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = *session
	return nil
}

// Get retrieves the session for a token. A missing entry is ErrNoSession.
func (r *MemorySessionRepo) Get(_ context.Context, token string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return nil, portal.ErrNoSession
	}
	return &session, nil
}

// Clear removes the session for a token. Clearing an absent token is a no-op.
func (r *MemorySessionRepo) Clear(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/constants"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/database"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// SessionRepo stores sessions in Redis keyed by opaque token. Entries have
// no TTL: a session lives until an explicit logout clears it.
type SessionRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewSessionRepo creates a new Redis-backed session repository
func NewSessionRepo(cfg *models.Config, redisClient *database.RedisClient) *SessionRepo {
	return &SessionRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// Save persists a session under its token.
func (r *SessionRepo) Save(ctx context.Context, token string, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.KeySession, token)
	if err := r.redisClient.Set(ctx, key, string(payload), 0); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get retrieves the session for a token. A missing entry is ErrNoSession.
func (r *SessionRepo) Get(ctx context.Context, token string) (*models.Session, error) {
	key := fmt.Sprintf(constants.KeySession, token)
	payload, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return nil, portal.ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Clear removes the session for a token. Clearing an absent token is a no-op.
func (r *SessionRepo) Clear(ctx context.Context, token string) error {
	key := fmt.Sprintf(constants.KeySession, token)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

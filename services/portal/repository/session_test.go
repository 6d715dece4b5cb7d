package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/constants"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/database"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// setupSessionRepoTest creates a repo backed by a miniredis server
func setupSessionRepoTest(t *testing.T) (*SessionRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	repo := &SessionRepo{
		redisClient: &database.RedisClient{Client: client},
	}
	return repo, mr
}

func TestSessionRepo_SaveAndGet(t *testing.T) {
	repo, mr := setupSessionRepoTest(t)
	defer mr.Close()

	session := &models.Session{
		Identifier: "rahul@email.com",
		Name:       "Rahul Sharma",
		Role:       models.RoleOwner,
		Site:       "2",
		Phone:      "9876543211",
	}

	err := repo.Save(context.Background(), "token-1", session)
	require.NoError(t, err)

	// Stored as JSON under the session key, with no TTL.
	key := fmt.Sprintf(constants.KeySession, "token-1")
	raw, err := mr.Get(key)
	require.NoError(t, err)

	var stored models.Session
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, *session, stored)
	assert.Zero(t, mr.TTL(key))

	got, err := repo.Get(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionRepo_GetMissing(t *testing.T) {
	repo, mr := setupSessionRepoTest(t)
	defer mr.Close()

	got, err := repo.Get(context.Background(), "unknown")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, portal.ErrNoSession)
}

func TestSessionRepo_Clear(t *testing.T) {
	repo, mr := setupSessionRepoTest(t)
	defer mr.Close()

	session := &models.Session{Identifier: "rahul@email.com"}
	require.NoError(t, repo.Save(context.Background(), "token-1", session))
	require.NoError(t, repo.Clear(context.Background(), "token-1"))

	_, err := repo.Get(context.Background(), "token-1")
	assert.ErrorIs(t, err, portal.ErrNoSession)

	// Clearing again is a no-op.
	assert.NoError(t, repo.Clear(context.Background(), "token-1"))
}

func TestMemorySessionRepo(t *testing.T) {
	repo := NewMemorySessionRepo()
	ctx := context.Background()

	session := &models.Session{Identifier: "priya@email.com", Role: models.RoleOwner, Site: "3"}

	_, err := repo.Get(ctx, "token-1")
	assert.ErrorIs(t, err, portal.ErrNoSession)

	require.NoError(t, repo.Save(ctx, "token-1", session))

	got, err := repo.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// The stored copy is detached from the caller's struct.
	session.Name = "changed"
	got, err = repo.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Empty(t, got.Name)

	require.NoError(t, repo.Clear(ctx, "token-1"))
	_, err = repo.Get(ctx, "token-1")
	assert.ErrorIs(t, err, portal.ErrNoSession)
	assert.NoError(t, repo.Clear(ctx, "token-1"))
}

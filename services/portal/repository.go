package portal

import (
	"context"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swetha2803/green-avenue-portal/services/portal SessionRepo

// SessionRepo persists authenticated sessions keyed by opaque token.
// Entries carry no TTL; they live until Clear removes them.
type SessionRepo interface {
	Save(ctx context.Context, token string, session *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Clear(ctx context.Context, token string) error
}

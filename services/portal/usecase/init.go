package usecase

import (
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
	"github.com/swetha2803/green-avenue-portal/services/portal/assistant"
)

type PortalUC struct {
	sessionRepo portal.SessionRepo
	directoryGW portal.DirectoryGW
	assistant   *assistant.Assistant
	cfg         *models.Config
}

// NewPortalUC creates a new portal usecase instance
func NewPortalUC(
	sessionRepo portal.SessionRepo,
	directoryGW portal.DirectoryGW,
	cfg *models.Config,
) *PortalUC {
	return &PortalUC{
		sessionRepo: sessionRepo,
		directoryGW: directoryGW,
		assistant:   assistant.New(),
		cfg:         cfg,
	}
}

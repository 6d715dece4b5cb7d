package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/jwt"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/logger"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/internal/utils"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// Authenticate validates credentials against the Directory Service and, on
// success, opens a server-side session and issues a JWT carrying its token.
func (uc *PortalUC) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Identifier == "" || req.Secret == "" {
		return nil, fmt.Errorf("%w: identifier and password", portal.ErrMissingField)
	}
	if !utils.IsValidIdentifier(req.Identifier) {
		return nil, portal.ErrInvalidCredentials
	}

	session, err := uc.directoryGW.ValidateLogin(ctx, req.Identifier, req.Secret)
	if err != nil {
		if !errors.Is(err, portal.ErrInvalidCredentials) {
			logger.WarnCtx(ctx, "Login check failed upstream",
				logger.String("identifier", req.Identifier),
				logger.Err(err))
		}
		return nil, err
	}

	if session.Identifier == "" {
		session.Identifier = req.Identifier
	}
	if session.Name == "" {
		session.Name = utils.DisplayNameFromIdentifier(session.Identifier)
	}

	token := uuid.New().String()
	if err := uc.sessionRepo.Save(ctx, token, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	signed, expiresAt, err := jwt.GenerateToken(token, session, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.InfoCtx(ctx, "Resident logged in",
		logger.String("identifier", session.Identifier),
		logger.String("role", session.Role),
		logger.String("site", session.Site))

	return &models.AuthResponse{
		Token:     signed,
		User:      session,
		ExpiresAt: expiresAt,
	}, nil
}

// GetSession reports the session behind a token. It is a pure store read:
// an unknown or empty token is a clean "not logged in", never an error.
func (uc *PortalUC) GetSession(ctx context.Context, token string) (*models.SessionStatus, error) {
	if token == "" {
		return &models.SessionStatus{LoggedIn: false}, nil
	}

	session, err := uc.sessionRepo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, portal.ErrNoSession) {
			return &models.SessionStatus{LoggedIn: false}, nil
		}
		return nil, err
	}

	return &models.SessionStatus{LoggedIn: true, User: session}, nil
}

// Logout clears the session for a token. Logging out twice is fine.
func (uc *PortalUC) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return uc.sessionRepo.Clear(ctx, token)
}

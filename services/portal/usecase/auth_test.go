package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
	"github.com/swetha2803/green-avenue-portal/services/portal/mocks"
)

func setupPortalUCTest(t *testing.T) (*PortalUC, *mocks.MockSessionRepo, *mocks.MockDirectoryGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockDirectoryGW(ctrl)
	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "green-avenue-portal",
		},
	}

	return NewPortalUC(mockRepo, mockGW, cfg), mockRepo, mockGW, ctrl
}

func TestAuthenticate_Success(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	session := &models.Session{
		Identifier: "rahul@email.com",
		Name:       "Rahul Sharma",
		Role:       models.RoleOwner,
		Site:       "2",
	}

	mockGW.EXPECT().
		ValidateLogin(gomock.Any(), "rahul@email.com", "secret").
		Return(session, nil)

	var savedToken string
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any(), session).
		DoAndReturn(func(_ context.Context, token string, _ *models.Session) error {
			savedToken = token
			return nil
		})

	resp, err := uc.Authenticate(context.Background(), &models.LoginRequest{
		Identifier: "rahul@email.com",
		Secret:     "secret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, savedToken)
	assert.Equal(t, session, resp.User)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestAuthenticate_DefaultsDisplayName(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	mockGW.EXPECT().
		ValidateLogin(gomock.Any(), "priya@email.com", "secret").
		Return(&models.Session{Identifier: "priya@email.com", Role: models.RoleOwner, Site: "3"}, nil)
	mockRepo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.Authenticate(context.Background(), &models.LoginRequest{
		Identifier: "priya@email.com",
		Secret:     "secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "priya", resp.User.Name)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	uc, _, mockGW, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	mockGW.EXPECT().
		ValidateLogin(gomock.Any(), "rahul@email.com", "wrong").
		Return(nil, portal.ErrInvalidCredentials)

	// No Save expectation: a failed login must not persist a session.
	resp, err := uc.Authenticate(context.Background(), &models.LoginRequest{
		Identifier: "rahul@email.com",
		Secret:     "wrong",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, portal.ErrInvalidCredentials)
}

func TestAuthenticate_DirectoryUnavailable(t *testing.T) {
	uc, _, mockGW, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	mockGW.EXPECT().
		ValidateLogin(gomock.Any(), "rahul@email.com", "secret").
		Return(nil, portal.ErrDirectoryUnavailable)

	resp, err := uc.Authenticate(context.Background(), &models.LoginRequest{
		Identifier: "rahul@email.com",
		Secret:     "secret",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, portal.ErrDirectoryUnavailable)
	assert.NotErrorIs(t, err, portal.ErrInvalidCredentials)
}

func TestAuthenticate_MissingFields(t *testing.T) {
	uc, _, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	resp, err := uc.Authenticate(context.Background(), &models.LoginRequest{Identifier: "rahul@email.com"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, portal.ErrMissingField)

	resp, err = uc.Authenticate(context.Background(), &models.LoginRequest{Secret: "secret"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, portal.ErrMissingField)
}

func TestAuthenticate_MalformedIdentifier(t *testing.T) {
	uc, _, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	resp, err := uc.Authenticate(context.Background(), &models.LoginRequest{
		Identifier: "not an identifier",
		Secret:     "secret",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, portal.ErrInvalidCredentials)
}

func TestGetSession_Active(t *testing.T) {
	uc, mockRepo, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	session := &models.Session{Identifier: "rahul@email.com", Role: models.RoleOwner}
	mockRepo.EXPECT().Get(gomock.Any(), "token-1").Return(session, nil)

	status, err := uc.GetSession(context.Background(), "token-1")

	assert.NoError(t, err)
	assert.True(t, status.LoggedIn)
	assert.Equal(t, session, status.User)
}

func TestGetSession_Missing(t *testing.T) {
	uc, mockRepo, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().Get(gomock.Any(), "stale").Return(nil, portal.ErrNoSession)

	status, err := uc.GetSession(context.Background(), "stale")

	assert.NoError(t, err)
	assert.False(t, status.LoggedIn)
	assert.Nil(t, status.User)
}

func TestGetSession_EmptyToken(t *testing.T) {
	uc, _, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	// No store call at all for an empty token.
	status, err := uc.GetSession(context.Background(), "")

	assert.NoError(t, err)
	assert.False(t, status.LoggedIn)
}

func TestLogout(t *testing.T) {
	uc, mockRepo, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().Clear(gomock.Any(), "token-1").Return(nil).Times(2)

	assert.NoError(t, uc.Logout(context.Background(), "token-1"))
	// Logging out again is still fine.
	assert.NoError(t, uc.Logout(context.Background(), "token-1"))
	// An empty token never touches the store.
	assert.NoError(t, uc.Logout(context.Background(), ""))
}

package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

func TestPostNotice_AdminOnly(t *testing.T) {
	uc, _, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	owner := &models.Session{Identifier: "rahul@email.com", Role: models.RoleOwner}
	err := uc.PostNotice(context.Background(), owner, &models.NoticeDraft{Title: "t", Message: "m"})
	assert.ErrorIs(t, err, portal.ErrForbidden)
}

func TestPostNotice_Success(t *testing.T) {
	uc, _, mockGW, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	admin := &models.Session{Identifier: "admin@greenavenue.com", Role: models.RoleAdmin}
	draft := &models.NoticeDraft{Type: "General", Title: "Water Tank Cleaning", Message: "This Sunday"}

	mockGW.EXPECT().PostNotice(gomock.Any(), "admin@greenavenue.com", draft).Return(nil)

	assert.NoError(t, uc.PostNotice(context.Background(), admin, draft))
}

func TestPostProperty_TenantForbidden(t *testing.T) {
	uc, _, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	tenant := &models.Session{Identifier: "amit@email.com", Role: models.RoleTenant}
	err := uc.PostProperty(context.Background(), tenant, &models.PropertyDraft{Type: "rent", Contact: "9876543213"})
	assert.ErrorIs(t, err, portal.ErrForbidden)
}

func TestVotePoll_RequiresOption(t *testing.T) {
	uc, _, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	session := &models.Session{Identifier: "rahul@email.com", Role: models.RoleOwner}
	err := uc.VotePoll(context.Background(), session, "1", &models.VoteRequest{})
	assert.ErrorIs(t, err, portal.ErrMissingField)
}

func TestVotePoll_RejectionPassesThrough(t *testing.T) {
	uc, _, mockGW, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	session := &models.Session{Identifier: "rahul@email.com", Role: models.RoleOwner}
	mockGW.EXPECT().
		VotePoll(gomock.Any(), "rahul@email.com", "2", "Yes").
		Return(portal.ErrDirectoryRejected)

	err := uc.VotePoll(context.Background(), session, "2", &models.VoteRequest{Option: "Yes"})
	assert.True(t, portal.IsRejection(err))
}

func TestSubmitRequest_DefaultPriority(t *testing.T) {
	uc, _, mockGW, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	session := &models.Session{Identifier: "rahul@email.com", Role: models.RoleOwner}
	draft := &models.ServiceRequestDraft{Type: "Maintenance", Message: "Street light out"}

	mockGW.EXPECT().
		SubmitRequest(gomock.Any(), "rahul@email.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, d *models.ServiceRequestDraft) error {
			assert.Equal(t, "Normal", d.Priority)
			return nil
		})

	assert.NoError(t, uc.SubmitRequest(context.Background(), session, draft))
}

func TestGetAllAccounts_AdminOnly(t *testing.T) {
	uc, _, mockGW, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	owner := &models.Session{Identifier: "rahul@email.com", Role: models.RoleOwner}
	accounts, err := uc.GetAllAccounts(context.Background(), owner)
	assert.Nil(t, accounts)
	assert.ErrorIs(t, err, portal.ErrForbidden)

	admin := &models.Session{Identifier: "admin@greenavenue.com", Role: models.RoleAdmin}
	mockGW.EXPECT().GetAllUsers(gomock.Any()).Return([]models.Account{{Email: "rahul@email.com"}}, nil)

	accounts, err = uc.GetAllAccounts(context.Background(), admin)
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestChat_EmptyMessage(t *testing.T) {
	uc, _, _, ctrl := setupPortalUCTest(t)
	defer ctrl.Finish()

	reply, err := uc.Chat(context.Background(), &models.ChatMessage{Message: "   "})
	assert.Nil(t, reply)
	assert.ErrorIs(t, err, portal.ErrMissingField)
}

package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

func TestMockDirectory_ValidateLogin(t *testing.T) {
	m := NewMockDirectory()
	ctx := context.Background()

	session, err := m.ValidateLogin(ctx, "admin@greenavenue.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.Equal(t, "1", session.Site)
	assert.Equal(t, "Admin User", session.Name)

	_, err = m.ValidateLogin(ctx, "admin@greenavenue.com", "wrong")
	assert.ErrorIs(t, err, portal.ErrInvalidCredentials)

	_, err = m.ValidateLogin(ctx, "nobody@greenavenue.com", "admin123")
	assert.ErrorIs(t, err, portal.ErrInvalidCredentials)
}

func TestMockDirectory_VisitorsBySite(t *testing.T) {
	m := NewMockDirectory()
	ctx := context.Background()

	// Seeded passes belong to site 1 (the admin).
	passes, err := m.GetMyVisitors(ctx, "admin@greenavenue.com")
	require.NoError(t, err)
	assert.Len(t, passes, 2)

	passes, err = m.GetMyVisitors(ctx, "rahul@email.com")
	require.NoError(t, err)
	assert.Empty(t, passes)

	// A new pass lands on the registrant's site.
	err = m.RegisterVisitor(ctx, &models.VisitorPass{
		VisitorName: "New Guest",
		OTP:         "111111",
		Status:      models.VisitorStatusPending,
	}, "rahul@email.com")
	require.NoError(t, err)

	passes, err = m.GetMyVisitors(ctx, "rahul@email.com")
	require.NoError(t, err)
	require.Len(t, passes, 1)
	assert.Equal(t, "New Guest", passes[0].VisitorName)
	assert.Equal(t, "2", passes[0].SiteNumber)
}

func TestMockDirectory_VotePoll(t *testing.T) {
	m := NewMockDirectory()
	ctx := context.Background()

	require.NoError(t, m.VotePoll(ctx, "rahul@email.com", "1", "Yes"))

	polls, err := m.GetPolls(ctx, "rahul@email.com")
	require.NoError(t, err)
	assert.Equal(t, 26, polls[0].Votes["Yes"])
	assert.Equal(t, 41, polls[0].TotalVotes)

	// Second vote on the same poll is rejected.
	err = m.VotePoll(ctx, "rahul@email.com", "1", "No")
	assert.True(t, portal.IsRejection(err))

	// Poll 2 has ended.
	err = m.VotePoll(ctx, "rahul@email.com", "2", "Sunday Morning")
	assert.True(t, portal.IsRejection(err))

	// Unknown poll.
	err = m.VotePoll(ctx, "rahul@email.com", "99", "Yes")
	assert.True(t, portal.IsRejection(err))
}

func TestMockDirectory_Writes(t *testing.T) {
	m := NewMockDirectory()
	ctx := context.Background()

	require.NoError(t, m.PostNotice(ctx, "admin@greenavenue.com", &models.NoticeDraft{
		Type: "General", Title: "Test", Message: "Hello",
	}))
	notices, err := m.GetNotices(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test", notices[0].Title)

	require.NoError(t, m.SubmitRequest(ctx, "rahul@email.com", &models.ServiceRequestDraft{
		Type: "Security", Message: "Camera down", Priority: "High",
	}))
	requests, err := m.GetMyRequests(ctx, "rahul@email.com")
	require.NoError(t, err)
	assert.Equal(t, "Open", requests[len(requests)-1].Status)
}

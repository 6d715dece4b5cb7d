package http

import (
	"encoding/json"
	nethttp "net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
	"github.com/swetha2803/green-avenue-portal/services/portal/mocks"
)

func expectSession(mockUC *mocks.MockPortalUC, token string, session *models.Session) {
	mockUC.EXPECT().
		GetSession(gomock.Any(), token).
		Return(&models.SessionStatus{LoggedIn: true, User: session}, nil)
}

func TestRegisterVisitor_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewVisitorHandler(mockUC)

	session := &models.Session{Identifier: "rahul@email.com", Site: "2", Role: models.RoleOwner}
	expectSession(mockUC, "tok", session)

	expiry := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	mockUC.EXPECT().
		RegisterVisitor(gomock.Any(), session, &models.RegisterVisitorRequest{
			Name: "John Doe", Phone: "9999999999", VisitDate: "2026-09-01",
		}).
		Return(&models.VisitorPassReceipt{OTP: "123456", Expiry: expiry}, nil)

	c, rec := newEchoContext(nethttp.MethodPost, "/visitors",
		`{"name":"John Doe","phone":"9999999999","visitDate":"2026-09-01"}`)
	c.Set("session_token", "tok")

	require.NoError(t, h.RegisterVisitor(c))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)

	var body struct {
		Success bool      `json:"success"`
		OTP     string    `json:"otp"`
		Expiry  time.Time `json:"expiry"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "123456", body.OTP)
	assert.True(t, expiry.Equal(body.Expiry))
}

func TestRegisterVisitor_MissingField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewVisitorHandler(mockUC)

	session := &models.Session{Identifier: "rahul@email.com", Site: "2"}
	expectSession(mockUC, "tok", session)

	mockUC.EXPECT().
		RegisterVisitor(gomock.Any(), session, gomock.Any()).
		Return(nil, portal.ErrMissingField)

	c, rec := newEchoContext(nethttp.MethodPost, "/visitors", `{"name":"John Doe"}`)
	c.Set("session_token", "tok")

	require.NoError(t, h.RegisterVisitor(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestRegisterVisitor_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewVisitorHandler(mockUC)

	mockUC.EXPECT().
		GetSession(gomock.Any(), "stale").
		Return(&models.SessionStatus{LoggedIn: false}, nil)

	c, rec := newEchoContext(nethttp.MethodPost, "/visitors", `{"name":"John Doe"}`)
	c.Set("session_token", "stale")

	require.NoError(t, h.RegisterVisitor(c))
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestListVisitors_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewVisitorHandler(mockUC)

	session := &models.Session{Identifier: "rahul@email.com", Site: "2"}
	expectSession(mockUC, "tok", session)

	mockUC.EXPECT().
		ListVisitors(gomock.Any(), session).
		Return([]models.VisitorPass{
			{ID: "1", VisitorName: "John Doe", OTP: "123456", OTPExpired: false},
		}, nil)

	c, rec := newEchoContext(nethttp.MethodGet, "/visitors", "")
	c.Set("session_token", "tok")

	require.NoError(t, h.ListVisitors(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"otpExpired":false`)
}

func TestListVisitors_DirectoryDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewVisitorHandler(mockUC)

	session := &models.Session{Identifier: "rahul@email.com", Site: "2"}
	expectSession(mockUC, "tok", session)

	mockUC.EXPECT().
		ListVisitors(gomock.Any(), session).
		Return(nil, portal.ErrDirectoryUnavailable)

	c, rec := newEchoContext(nethttp.MethodGet, "/visitors", "")
	c.Set("session_token", "tok")

	require.NoError(t, h.ListVisitors(c))
	assert.Equal(t, nethttp.StatusServiceUnavailable, rec.Code)
}

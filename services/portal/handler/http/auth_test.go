package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/swetha2803/green-avenue-portal/internal/pkg/jwt"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
	"github.com/swetha2803/green-avenue-portal/services/portal/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "green-avenue-portal",
		},
	}
}

func newEchoContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *nethttp.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	authResp := &models.AuthResponse{
		Token: "signed.jwt.token",
		User:  &models.Session{Identifier: "rahul@email.com", Role: models.RoleOwner},
	}
	mockUC.EXPECT().
		Authenticate(gomock.Any(), &models.LoginRequest{Identifier: "rahul@email.com", Secret: "secret"}).
		Return(authResp, nil)

	c, rec := newEchoContext(nethttp.MethodPost, "/auth/login",
		`{"identifier":"rahul@email.com","password":"secret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var body struct {
		Success bool                 `json:"success"`
		Data    *models.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "signed.jwt.token", body.Data.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		Authenticate(gomock.Any(), gomock.Any()).
		Return(nil, portal.ErrInvalidCredentials)

	c, rec := newEchoContext(nethttp.MethodPost, "/auth/login",
		`{"identifier":"rahul@email.com","password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestLogin_DirectoryDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		Authenticate(gomock.Any(), gomock.Any()).
		Return(nil, portal.ErrDirectoryUnavailable)

	c, rec := newEchoContext(nethttp.MethodPost, "/auth/login",
		`{"identifier":"rahul@email.com","password":"secret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, nethttp.StatusServiceUnavailable, rec.Code)
}

func TestGetSession_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		GetSession(gomock.Any(), "").
		Return(&models.SessionStatus{LoggedIn: false}, nil)

	c, rec := newEchoContext(nethttp.MethodGet, "/session", "")

	require.NoError(t, h.GetSession(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"loggedIn":false}`, rec.Body.String())
}

func TestGetSession_WithBearerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewAuthHandler(mockUC, cfg)

	session := &models.Session{Identifier: "rahul@email.com", Role: models.RoleOwner, Site: "2"}
	signed, _, err := jwtpkg.GenerateToken("session-token-1", session, cfg)
	require.NoError(t, err)

	mockUC.EXPECT().
		GetSession(gomock.Any(), "session-token-1").
		Return(&models.SessionStatus{LoggedIn: true, User: session}, nil)

	c, rec := newEchoContext(nethttp.MethodGet, "/session", "")
	c.Request().Header.Set("Authorization", "Bearer "+signed)

	require.NoError(t, h.GetSession(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var status models.SessionStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.LoggedIn)
	assert.Equal(t, "rahul@email.com", status.User.Identifier)
}

func TestGetSession_GarbageTokenIsLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	// An unparsable bearer token degrades to "no session", not an error.
	mockUC.EXPECT().
		GetSession(gomock.Any(), "").
		Return(&models.SessionStatus{LoggedIn: false}, nil)

	c, rec := newEchoContext(nethttp.MethodGet, "/session", "")
	c.Request().Header.Set("Authorization", "Bearer not-a-jwt")

	require.NoError(t, h.GetSession(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"loggedIn":false}`, rec.Body.String())
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPortalUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().Logout(gomock.Any(), "session-token-1").Return(nil)

	c, rec := newEchoContext(nethttp.MethodPost, "/auth/logout", "")
	c.Set("session_token", "session-token-1")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

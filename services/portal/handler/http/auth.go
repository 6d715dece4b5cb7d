package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/swetha2803/green-avenue-portal/internal/pkg/jwt"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/logger"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/internal/utils"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// AuthHandler handles HTTP requests for the session lifecycle
type AuthHandler struct {
	portalUC portal.PortalUC
	cfg      *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(portalUC portal.PortalUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		portalUC: portalUC,
		cfg:      cfg,
	}
}

// Login handles credential validation and session creation
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid login payload", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.portalUC.Authenticate(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Login successful", resp)
}

// GetSession reports whether the caller holds a live session. The route is
// public: a missing or stale token answers loggedIn:false, never 401, so the
// client can probe on startup without special-casing errors.
func (h *AuthHandler) GetSession(c echo.Context) error {
	status, err := h.portalUC.GetSession(c.Request().Context(), h.sessionToken(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(nethttp.StatusOK, status)
}

// Logout clears the caller's session
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("session_token").(string)
	if err := h.portalUC.Logout(c.Request().Context(), token); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Logged out", nil)
}

// sessionToken extracts the session claim from a bearer token, tolerating
// absent or invalid headers.
func (h *AuthHandler) sessionToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		return ""
	}

	claims, err := jwtpkg.ValidateToken(authHeader[7:], h.cfg.JWT.Secret)
	if err != nil {
		return ""
	}

	if token, ok := (*claims)["session"].(string); ok {
		return token
	}
	return ""
}

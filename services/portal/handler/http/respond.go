package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/internal/utils"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// respondError maps domain errors to HTTP responses. Rejections the
// Directory decided on surface as client errors; transport trouble is a 503.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, portal.ErrMissingField):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, portal.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, portal.ErrNoSession):
		return utils.UnauthorizedResponse(c, "")
	case errors.Is(err, portal.ErrForbidden):
		return utils.ForbiddenResponse(c, "")
	case errors.Is(err, portal.ErrDirectoryRejected):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, portal.ErrDirectoryUnavailable):
		return utils.ServiceUnavailableResponse(c, "Connection error")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}

// currentSession resolves the caller's session from the token the JWT
// middleware extracted. The store stays authoritative: a logged-out token
// fails here even while its JWT is still within its signed lifetime.
func currentSession(c echo.Context, uc portal.PortalUC) (*models.Session, error) {
	token, _ := c.Get("session_token").(string)

	status, err := uc.GetSession(c.Request().Context(), token)
	if err != nil {
		return nil, err
	}
	if !status.LoggedIn {
		return nil, portal.ErrNoSession
	}
	return status.User, nil
}

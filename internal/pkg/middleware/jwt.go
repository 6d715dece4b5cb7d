package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/swetha2803/green-avenue-portal/internal/utils"
)

// RequireRole gates a route on the role claim extracted by the JWT
// middleware's success handler.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Get("user_role") != role {
				return utils.ForbiddenResponse(c, "")
			}
			return next(c)
		}
	}
}

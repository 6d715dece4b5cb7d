package http

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/logger"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/internal/utils"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// VisitorHandler handles HTTP requests for visitor passes
type VisitorHandler struct {
	portalUC portal.PortalUC
}

// NewVisitorHandler creates a new visitor handler
func NewVisitorHandler(portalUC portal.PortalUC) *VisitorHandler {
	return &VisitorHandler{
		portalUC: portalUC,
	}
}

// registerVisitorResponse carries the one-time passcode receipt. The otp
// and expiry sit at the top level of the body, next to success.
type registerVisitorResponse struct {
	Success bool      `json:"success"`
	OTP     string    `json:"otp"`
	Expiry  time.Time `json:"expiry"`
}

// ListVisitors returns the caller's visitor passes
func (h *VisitorHandler) ListVisitors(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	passes, err := h.portalUC.ListVisitors(c.Request().Context(), session)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", passes)
}

// RegisterVisitor issues a gate passcode for a pre-registered visitor
func (h *VisitorHandler) RegisterVisitor(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	var req models.RegisterVisitorRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid visitor payload", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	receipt, err := h.portalUC.RegisterVisitor(c.Request().Context(), session, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(nethttp.StatusCreated, registerVisitorResponse{
		Success: true,
		OTP:     receipt.OTP,
		Expiry:  receipt.Expiry,
	})
}

package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/logger"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/internal/utils"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// CommunityHandler handles HTTP requests for community data
type CommunityHandler struct {
	portalUC portal.PortalUC
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(portalUC portal.PortalUC) *CommunityHandler {
	return &CommunityHandler{
		portalUC: portalUC,
	}
}

// GetDirectory returns the public resident directory
func (h *CommunityHandler) GetDirectory(c echo.Context) error {
	residents, err := h.portalUC.GetDirectory(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", residents)
}

// GetNotices returns community announcements
func (h *CommunityHandler) GetNotices(c echo.Context) error {
	notices, err := h.portalUC.GetNotices(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", notices)
}

// PostNotice publishes an announcement. Admin only.
func (h *CommunityHandler) PostNotice(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	var draft models.NoticeDraft
	if err := c.Bind(&draft); err != nil {
		logger.Warn("Invalid notice payload", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portalUC.PostNotice(c.Request().Context(), session, &draft); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Notice posted", nil)
}

// GetProperties returns active rent and sale listings
func (h *CommunityHandler) GetProperties(c echo.Context) error {
	properties, err := h.portalUC.GetProperties(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", properties)
}

// PostProperty submits a rent or sale listing
func (h *CommunityHandler) PostProperty(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	var draft models.PropertyDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portalUC.PostProperty(c.Request().Context(), session, &draft); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Listing submitted", nil)
}

// GetPolls returns polls with the caller's vote state
func (h *CommunityHandler) GetPolls(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	polls, err := h.portalUC.GetPolls(c.Request().Context(), session)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", polls)
}

// VotePoll records the caller's vote on a poll option
func (h *CommunityHandler) VotePoll(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	var vote models.VoteRequest
	if err := c.Bind(&vote); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portalUC.VotePoll(c.Request().Context(), session, c.Param("id"), &vote); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Vote recorded", nil)
}

// GetStats returns the dashboard counters
func (h *CommunityHandler) GetStats(c echo.Context) error {
	stats, err := h.portalUC.GetDashboardStats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", stats)
}

// GetPayments returns the caller's payment history
func (h *CommunityHandler) GetPayments(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	payments, err := h.portalUC.GetMyPayments(c.Request().Context(), session)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", payments)
}

// GetRequests returns the caller's service requests
func (h *CommunityHandler) GetRequests(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	requests, err := h.portalUC.GetMyRequests(c.Request().Context(), session)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", requests)
}

// SubmitRequest files a maintenance, security, or facility request
func (h *CommunityHandler) SubmitRequest(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	var draft models.ServiceRequestDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portalUC.SubmitRequest(c.Request().Context(), session, &draft); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Request submitted", nil)
}

// GetAllUsers returns every resident account for the admin panel
func (h *CommunityHandler) GetAllUsers(c echo.Context) error {
	session, err := currentSession(c, h.portalUC)
	if err != nil {
		return respondError(c, err)
	}

	accounts, err := h.portalUC.GetAllAccounts(c.Request().Context(), session)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", accounts)
}

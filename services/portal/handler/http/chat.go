package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/internal/utils"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// ChatHandler handles HTTP requests for the chat assistant
type ChatHandler struct {
	portalUC portal.PortalUC
}

// NewChatHandler creates a new chat handler
func NewChatHandler(portalUC portal.PortalUC) *ChatHandler {
	return &ChatHandler{
		portalUC: portalUC,
	}
}

// Chat answers a resident question with a canned reply
func (h *ChatHandler) Chat(c echo.Context) error {
	var msg models.ChatMessage
	if err := c.Bind(&msg); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	reply, err := h.portalUC.Chat(c.Request().Context(), &msg)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", reply)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// Chat answers a resident question through the keyword assistant.
func (uc *PortalUC) Chat(_ context.Context, msg *models.ChatMessage) (*models.ChatReply, error) {
	if strings.TrimSpace(msg.Message) == "" {
		return nil, fmt.Errorf("%w: message", portal.ErrMissingField)
	}
	return uc.assistant.Reply(msg.Message), nil
}

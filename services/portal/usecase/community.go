package usecase

import (
	"context"
	"fmt"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/logger"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// GetDirectory returns the public resident directory.
func (uc *PortalUC) GetDirectory(ctx context.Context) ([]models.Resident, error) {
	return uc.directoryGW.GetCommunityDirectory(ctx)
}

// GetNotices returns community announcements.
func (uc *PortalUC) GetNotices(ctx context.Context) ([]models.Notice, error) {
	return uc.directoryGW.GetNotices(ctx)
}

// PostNotice publishes an announcement. Admins only.
func (uc *PortalUC) PostNotice(ctx context.Context, session *models.Session, draft *models.NoticeDraft) error {
	if !session.IsAdmin() {
		return portal.ErrForbidden
	}
	if draft.Title == "" || draft.Message == "" {
		return fmt.Errorf("%w: title and message", portal.ErrMissingField)
	}

	if err := uc.directoryGW.PostNotice(ctx, session.Identifier, draft); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Notice posted",
		logger.String("posted_by", session.Identifier),
		logger.String("type", draft.Type))
	return nil
}

// GetProperties returns active rent and sale listings.
func (uc *PortalUC) GetProperties(ctx context.Context) ([]models.Property, error) {
	return uc.directoryGW.GetProperties(ctx)
}

// PostProperty submits a listing. Tenants cannot list.
func (uc *PortalUC) PostProperty(ctx context.Context, session *models.Session, draft *models.PropertyDraft) error {
	if session.Role == models.RoleTenant {
		return portal.ErrForbidden
	}
	if draft.Type == "" || draft.Contact == "" {
		return fmt.Errorf("%w: listing type and contact", portal.ErrMissingField)
	}
	return uc.directoryGW.PostProperty(ctx, session.Identifier, draft)
}

// GetPolls returns polls with the caller's own vote state.
func (uc *PortalUC) GetPolls(ctx context.Context, session *models.Session) ([]models.Poll, error) {
	return uc.directoryGW.GetPolls(ctx, session.Identifier)
}

// VotePoll records one vote for the caller on a poll option.
func (uc *PortalUC) VotePoll(ctx context.Context, session *models.Session, pollID string, vote *models.VoteRequest) error {
	if pollID == "" || vote.Option == "" {
		return fmt.Errorf("%w: poll and option", portal.ErrMissingField)
	}
	return uc.directoryGW.VotePoll(ctx, session.Identifier, pollID, vote.Option)
}

// GetDashboardStats returns the headline counters for the home page.
func (uc *PortalUC) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return uc.directoryGW.GetDashboardStats(ctx)
}

// GetMyPayments returns the caller's maintenance payment history.
func (uc *PortalUC) GetMyPayments(ctx context.Context, session *models.Session) ([]models.Payment, error) {
	return uc.directoryGW.GetMyPayments(ctx, session.Identifier)
}

// GetMyRequests returns the caller's service requests.
func (uc *PortalUC) GetMyRequests(ctx context.Context, session *models.Session) ([]models.ServiceRequest, error) {
	return uc.directoryGW.GetMyRequests(ctx, session.Identifier)
}

// SubmitRequest files a maintenance, security, or facility request.
func (uc *PortalUC) SubmitRequest(ctx context.Context, session *models.Session, draft *models.ServiceRequestDraft) error {
	if draft.Type == "" || draft.Message == "" {
		return fmt.Errorf("%w: request type and message", portal.ErrMissingField)
	}
	if draft.Priority == "" {
		draft.Priority = "Normal"
	}
	return uc.directoryGW.SubmitRequest(ctx, session.Identifier, draft)
}

// GetAllAccounts returns every resident account. Admins only.
func (uc *PortalUC) GetAllAccounts(ctx context.Context, session *models.Session) ([]models.Account, error) {
	if !session.IsAdmin() {
		return nil, portal.ErrForbidden
	}
	return uc.directoryGW.GetAllUsers(ctx)
}

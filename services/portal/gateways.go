package portal

import (
	"context"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/swetha2803/green-avenue-portal/services/portal DirectoryGW

// DirectoryGW defines the Directory Service gateway interface. The Directory
// is the spreadsheet-backed scripting endpoint that owns credentials and all
// community records; the portal holds no data of its own besides sessions.
type DirectoryGW interface {
	ValidateLogin(ctx context.Context, identifier, secret string) (*models.Session, error)
	GetCommunityDirectory(ctx context.Context) ([]models.Resident, error)
	GetNotices(ctx context.Context) ([]models.Notice, error)
	PostNotice(ctx context.Context, postedBy string, draft *models.NoticeDraft) error
	GetMyVisitors(ctx context.Context, identifier string) ([]models.VisitorPass, error)
	RegisterVisitor(ctx context.Context, pass *models.VisitorPass, registeredBy string) error
	GetProperties(ctx context.Context) ([]models.Property, error)
	PostProperty(ctx context.Context, submittedBy string, draft *models.PropertyDraft) error
	GetPolls(ctx context.Context, identifier string) ([]models.Poll, error)
	VotePoll(ctx context.Context, identifier, pollID, option string) error
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	GetMyPayments(ctx context.Context, identifier string) ([]models.Payment, error)
	GetMyRequests(ctx context.Context, identifier string) ([]models.ServiceRequest, error)
	SubmitRequest(ctx context.Context, identifier string, draft *models.ServiceRequestDraft) error
	GetAllUsers(ctx context.Context) ([]models.Account, error)
}

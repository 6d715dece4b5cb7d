package portal

import (
	"context"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swetha2803/green-avenue-portal/services/portal PortalUC

// PortalUC represents the portal usecase interface
type PortalUC interface {
	// session lifecycle
	Authenticate(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetSession(ctx context.Context, token string) (*models.SessionStatus, error)
	Logout(ctx context.Context, token string) error

	// visitor passes
	RegisterVisitor(ctx context.Context, session *models.Session, req *models.RegisterVisitorRequest) (*models.VisitorPassReceipt, error)
	ListVisitors(ctx context.Context, session *models.Session) ([]models.VisitorPass, error)

	// community data
	GetDirectory(ctx context.Context) ([]models.Resident, error)
	GetNotices(ctx context.Context) ([]models.Notice, error)
	PostNotice(ctx context.Context, session *models.Session, draft *models.NoticeDraft) error
	GetProperties(ctx context.Context) ([]models.Property, error)
	PostProperty(ctx context.Context, session *models.Session, draft *models.PropertyDraft) error
	GetPolls(ctx context.Context, session *models.Session) ([]models.Poll, error)
	VotePoll(ctx context.Context, session *models.Session, pollID string, vote *models.VoteRequest) error
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	GetMyPayments(ctx context.Context, session *models.Session) ([]models.Payment, error)
	GetMyRequests(ctx context.Context, session *models.Session) ([]models.ServiceRequest, error)
	SubmitRequest(ctx context.Context, session *models.Session, draft *models.ServiceRequestDraft) error
	GetAllAccounts(ctx context.Context, session *models.Session) ([]models.Account, error)

	// chat assistant
	Chat(ctx context.Context, msg *models.ChatMessage) (*models.ChatReply, error)
}

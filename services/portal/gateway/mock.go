package gateway

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// MockDirectory is an in-memory stand-in for the Directory Service, used for
// local development when no scripting endpoint is deployed. It seeds the same
// sample community the real sheet starts with and accepts writes into memory.
type MockDirectory struct {
	mu sync.Mutex

	credentials map[string][]byte // identifier -> bcrypt hash
	profiles    map[string]models.Session
	residents   []models.Resident
	notices     []models.Notice
	visitors    []models.VisitorPass
	properties  []models.Property
	polls       []models.Poll
	payments    []models.Payment
	requests    []models.ServiceRequest
	accounts    []models.Account
	stats       models.DashboardStats
}

const mockAdminEmail = "admin@greenavenue.com"

// NewMockDirectory seeds the fixture community. The sample admin password is
// hashed at construction so credential checks exercise the same comparison
// path a real store would.
func NewMockDirectory() *MockDirectory {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to seed mock credentials: %v", err))
	}

	now := time.Now()
	m := &MockDirectory{
		credentials: map[string][]byte{mockAdminEmail: hash},
		profiles: map[string]models.Session{
			mockAdminEmail: {
				Identifier: mockAdminEmail,
				Name:       "Admin User",
				Role:       models.RoleAdmin,
				Site:       "1",
				Phone:      "9876543210",
			},
		},
		residents: []models.Resident{
			{Site: "1", Name: "Admin User", Phone: "9876543210", Email: mockAdminEmail, Role: models.RoleAdmin},
			{Site: "2", Name: "Rahul Sharma", Phone: "9876543211", Email: "rahul@email.com", Role: models.RoleOwner},
			{Site: "3", Name: "Priya Singh", Phone: "9876543212", Email: "priya@email.com", Role: models.RoleOwner},
			{Site: "4", Name: "Amit Patel", Phone: "9876543213", Email: "amit@email.com", Role: models.RoleTenant},
			{Site: "5", Name: "Sneha Reddy", Phone: "9876543214", Email: "sneha@email.com", Role: models.RoleOwner},
		},
		notices: []models.Notice{
			{ID: "1", Type: "General", Title: "Water Tank Cleaning", Message: "Water tank cleaning scheduled for this Sunday. Please store water accordingly.", PostedBy: mockAdminEmail, PostedAt: "27/12/2024, 10:00 AM"},
			{ID: "2", Type: "Event", Title: "New Year Celebration", Message: "Join us for New Year celebration at the community hall on 31st December.", PostedBy: mockAdminEmail, PostedAt: "26/12/2024, 2:00 PM"},
			{ID: "3", Type: "Appreciation", Title: "Thank You Volunteers", Message: "Thank you to all volunteers who helped in the community cleanup drive!", PostedBy: mockAdminEmail, PostedAt: "25/12/2024, 11:00 AM"},
		},
		visitors: []models.VisitorPass{
			{ID: "1", VisitorName: "John Doe", VisitorPhone: "9999999999", VisitDate: "2024-12-28", OTP: "123456", OTPExpiry: now.Add(24 * time.Hour), Status: models.VisitorStatusPending, SiteNumber: "1"},
			{ID: "2", VisitorName: "Jane Smith", VisitorPhone: "8888888888", VisitDate: "2024-12-27", OTP: "654321", OTPExpiry: now.Add(-24 * time.Hour), Status: models.VisitorStatusCompleted, SiteNumber: "1"},
		},
		properties: []models.Property{
			{ID: "1", Type: "rent", PropertyType: "Apartment", SiteNumber: "15", Floor: "2nd", BHK: "2 BHK", Facing: "East", Contact: "9876543210", Facilities: "Parking, Lift", SubmittedBy: "owner@email.com", SubmittedAt: "27/12/2024"},
			{ID: "2", Type: "sale", PropertyType: "House", SiteNumber: "42", Floor: "Ground", BHK: "3 BHK", Facing: "North", Contact: "9876543211", Facilities: "Garden, Parking", SubmittedBy: "seller@email.com", SubmittedAt: "26/12/2024"},
		},
		polls: []models.Poll{
			{
				ID:         "1",
				Question:   "Should we install CCTV cameras at all entry points?",
				Options:    []string{"Yes", "No", "Need more discussion"},
				Votes:      map[string]int{"Yes": 25, "No": 5, "Need more discussion": 10},
				TotalVotes: 40,
				EndDate:    "2024-12-31",
				CreatedBy:  mockAdminEmail,
			},
			{
				ID:         "2",
				Question:   "Preferred timing for community meetings?",
				Options:    []string{"Weekday Evening", "Saturday Morning", "Sunday Morning"},
				Votes:      map[string]int{"Weekday Evening": 15, "Saturday Morning": 30, "Sunday Morning": 20},
				TotalVotes: 65,
				HasVoted:   true,
				UserVote:   "Saturday Morning",
				EndDate:    "2024-12-25",
				IsExpired:  true,
				CreatedBy:  mockAdminEmail,
			},
		},
		payments: []models.Payment{
			{ID: "1", Month: "December", Year: "2024", Amount: "1500", Status: "Approved", SubmittedAt: "15/12/2024"},
			{ID: "2", Month: "November", Year: "2024", Amount: "1500", Status: "Approved", SubmittedAt: "14/11/2024"},
			{ID: "3", Month: "January", Year: "2025", Amount: "1500", Status: "Pending", SubmittedAt: "27/12/2024"},
		},
		requests: []models.ServiceRequest{
			{ID: "1", Type: "Maintenance", Message: "Street light not working near site 25", Status: "Open", Priority: "High", SubmittedAt: "27/12/2024"},
			{ID: "2", Type: "Security", Message: "Gate not closing properly", Status: "Resolved", Priority: "Normal", SubmittedAt: "20/12/2024"},
		},
		accounts: []models.Account{
			{Email: mockAdminEmail, Site: "1", Name: "Admin User", Role: models.RoleAdmin, Status: "Active", Phone: "9876543210"},
			{Email: "rahul@email.com", Site: "2", Name: "Rahul Sharma", Role: models.RoleOwner, Status: "Active", Phone: "9876543211"},
			{Email: "priya@email.com", Site: "3", Name: "Priya Singh", Role: models.RoleOwner, Status: "Active", Phone: "9876543212"},
			{Email: "tenant@email.com", Site: "4", Name: "Amit Patel", Role: models.RoleTenant, Status: "Inactive", Phone: "9876543213"},
		},
		stats: models.DashboardStats{
			TotalResidents:  139,
			TotalNotices:    12,
			PendingVisitors: 5,
			OpenRequests:    8,
			PendingPayments: 15,
			ActiveListings:  4,
		},
	}
	return m
}

// ValidateLogin checks credentials against the seeded accounts.
func (m *MockDirectory) ValidateLogin(_ context.Context, identifier, secret string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash, ok := m.credentials[identifier]
	if !ok {
		return nil, portal.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
		return nil, portal.ErrInvalidCredentials
	}

	profile := m.profiles[identifier]
	return &profile, nil
}

func (m *MockDirectory) GetCommunityDirectory(_ context.Context) ([]models.Resident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Resident(nil), m.residents...), nil
}

func (m *MockDirectory) GetNotices(_ context.Context) ([]models.Notice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Notice(nil), m.notices...), nil
}

func (m *MockDirectory) PostNotice(_ context.Context, postedBy string, draft *models.NoticeDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notices = append([]models.Notice{{
		ID:       strconv.Itoa(len(m.notices) + 1),
		Type:     draft.Type,
		Title:    draft.Title,
		Message:  draft.Message,
		PostedBy: postedBy,
		PostedAt: time.Now().Format("02/01/2006, 3:04 PM"),
	}}, m.notices...)
	return nil
}

func (m *MockDirectory) GetMyVisitors(_ context.Context, identifier string) ([]models.VisitorPass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	site := m.siteOf(identifier)
	passes := []models.VisitorPass{}
	for _, p := range m.visitors {
		if p.SiteNumber == site {
			passes = append(passes, p)
		}
	}
	return passes, nil
}

func (m *MockDirectory) RegisterVisitor(_ context.Context, pass *models.VisitorPass, registeredBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *pass
	stored.ID = strconv.Itoa(len(m.visitors) + 1)
	if stored.SiteNumber == "" {
		stored.SiteNumber = m.siteOf(registeredBy)
	}
	m.visitors = append(m.visitors, stored)
	return nil
}

func (m *MockDirectory) GetProperties(_ context.Context) ([]models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Property(nil), m.properties...), nil
}

func (m *MockDirectory) PostProperty(_ context.Context, submittedBy string, draft *models.PropertyDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.properties = append(m.properties, models.Property{
		ID:           strconv.Itoa(len(m.properties) + 1),
		Type:         draft.Type,
		PropertyType: draft.PropertyType,
		SiteNumber:   m.siteOf(submittedBy),
		Floor:        draft.Floor,
		BHK:          draft.BHK,
		Facing:       draft.Facing,
		Contact:      draft.Contact,
		Facilities:   draft.Facilities,
		SubmittedBy:  submittedBy,
		SubmittedAt:  time.Now().Format("02/01/2006"),
	})
	return nil
}

func (m *MockDirectory) GetPolls(_ context.Context, _ string) ([]models.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Poll(nil), m.polls...), nil
}

func (m *MockDirectory) VotePoll(_ context.Context, _, pollID, option string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.polls {
		if m.polls[i].ID != pollID {
			continue
		}
		if m.polls[i].IsExpired {
			return fmt.Errorf("%w: poll has ended", portal.ErrDirectoryRejected)
		}
		if m.polls[i].HasVoted {
			return fmt.Errorf("%w: already voted", portal.ErrDirectoryRejected)
		}
		m.polls[i].Votes[option]++
		m.polls[i].TotalVotes++
		m.polls[i].HasVoted = true
		m.polls[i].UserVote = option
		return nil
	}
	return fmt.Errorf("%w: poll not found", portal.ErrDirectoryRejected)
}

func (m *MockDirectory) GetDashboardStats(_ context.Context) (*models.DashboardStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.stats
	return &stats, nil
}

func (m *MockDirectory) GetMyPayments(_ context.Context, _ string) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Payment(nil), m.payments...), nil
}

func (m *MockDirectory) GetMyRequests(_ context.Context, _ string) ([]models.ServiceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ServiceRequest(nil), m.requests...), nil
}

func (m *MockDirectory) SubmitRequest(_ context.Context, _ string, draft *models.ServiceRequestDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, models.ServiceRequest{
		ID:          strconv.Itoa(len(m.requests) + 1),
		Type:        draft.Type,
		Message:     draft.Message,
		Status:      "Open",
		Priority:    draft.Priority,
		SubmittedAt: time.Now().Format("02/01/2006"),
	})
	return nil
}

func (m *MockDirectory) GetAllUsers(_ context.Context) ([]models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Account(nil), m.accounts...), nil
}

// siteOf resolves an identifier to its site number. Callers hold m.mu.
func (m *MockDirectory) siteOf(identifier string) string {
	for _, r := range m.residents {
		if r.Email == identifier || r.Phone == identifier {
			return r.Site
		}
	}
	return ""
}

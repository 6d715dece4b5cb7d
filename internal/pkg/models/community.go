package models

// Resident is a public directory entry
type Resident struct {
	Site  string `json:"site"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Notice is a community announcement
type Notice struct {
	ID       string `json:"ID"`
	Type     string `json:"Type"` // General, Event, Appreciation
	Title    string `json:"Title"`
	Message  string `json:"Message"`
	PostedBy string `json:"PostedBy"`
	PostedAt string `json:"PostedAt"`
}

// NoticeDraft is an admin-submitted notice
type NoticeDraft struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Property is a rent/sale listing
type Property struct {
	ID           string `json:"ID"`
	Type         string `json:"Type"` // rent or sale
	PropertyType string `json:"PropertyType"`
	SiteNumber   string `json:"SiteNumber"`
	Floor        string `json:"Floor"`
	BHK          string `json:"BHK"`
	Facing       string `json:"Facing"`
	Contact      string `json:"Contact"`
	Facilities   string `json:"Facilities"`
	SubmittedBy  string `json:"SubmittedBy"`
	SubmittedAt  string `json:"SubmittedAt"`
}

// PropertyDraft is an owner-submitted listing
type PropertyDraft struct {
	Type         string `json:"type"`
	PropertyType string `json:"propertyType"`
	Floor        string `json:"floor"`
	BHK          string `json:"bhk"`
	Facing       string `json:"facing"`
	Contact      string `json:"contact"`
	Facilities   string `json:"facilities"`
}

// Poll is a community poll with per-option tallies
type Poll struct {
	ID         string         `json:"ID"`
	Question   string         `json:"Question"`
	Options    []string       `json:"options"`
	Votes      map[string]int `json:"votes"`
	TotalVotes int            `json:"totalVotes"`
	HasVoted   bool           `json:"hasVoted"`
	UserVote   string         `json:"userVote,omitempty"`
	EndDate    string         `json:"EndDate"`
	IsExpired  bool           `json:"isExpired"`
	CreatedBy  string         `json:"CreatedBy"`
}

// VoteRequest records a resident's single vote on a poll option
type VoteRequest struct {
	Option string `json:"option"`
}

// Payment is a maintenance payment record
type Payment struct {
	ID          string `json:"ID"`
	Month       string `json:"Month"`
	Year        string `json:"Year"`
	Amount      string `json:"Amount"`
	Status      string `json:"Status"` // Pending, Approved, Rejected
	SubmittedAt string `json:"SubmittedAt"`
}

// ServiceRequest is a maintenance/security/facility request
type ServiceRequest struct {
	ID          string `json:"ID"`
	Type        string `json:"Type"`
	Message     string `json:"Message"`
	Status      string `json:"Status"` // Open, Resolved
	Priority    string `json:"Priority"`
	SubmittedAt string `json:"SubmittedAt"`
}

// ServiceRequestDraft is a resident-submitted request
type ServiceRequestDraft struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// DashboardStats are the headline counters on the home page
type DashboardStats struct {
	TotalResidents  int `json:"totalResidents"`
	TotalNotices    int `json:"totalNotices"`
	PendingVisitors int `json:"pendingVisitors"`
	OpenRequests    int `json:"openRequests"`
	PendingPayments int `json:"pendingPayments"`
	ActiveListings  int `json:"activeListings"`
}

// Account is an admin-panel view of a resident account
type Account struct {
	Email  string `json:"email"`
	Site   string `json:"site"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"` // Active, Inactive
	Phone  string `json:"phone"`
}

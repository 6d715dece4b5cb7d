package models

// Resident roles. The set is open on the Directory side; these are the
// values the portal recognizes.
const (
	RoleAdmin  = "Admin"
	RoleOwner  = "Owner"
	RoleTenant = "Tenant"
)

// Session is the authenticated identity persisted after a successful login.
// It carries no expiry of its own; it lives until an explicit logout clears
// the store entry.
type Session struct {
	Identifier string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Site       string `json:"site"`
	Phone      string `json:"phone"`
}

// IsAdmin reports whether the session may see the admin surface.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// LoginRequest represents a login attempt with an email or phone identifier
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string   `json:"token"`
	User      *Session `json:"user"`
	ExpiresAt int64    `json:"expires_at"`
}

// SessionStatus is the shape of a session query: either a live session or
// an explicit "not logged in".
type SessionStatus struct {
	LoggedIn bool     `json:"loggedIn"`
	User     *Session `json:"user,omitempty"`
}

package models

import (
	"time"
)

// Visitor pass statuses as stored by the Directory Service.
const (
	VisitorStatusPending   = "Pending"
	VisitorStatusCompleted = "Completed"
)

// OTPValidity is how long a visitor OTP stays valid after issuance.
const OTPValidity = 24 * time.Hour

// VisitorPass represents a pre-registered visitor with a one-time gate
// passcode. Field names follow the Directory Service sheet columns.
type VisitorPass struct {
	ID           string    `json:"ID"`
	VisitorName  string    `json:"VisitorName"`
	VisitorPhone string    `json:"VisitorPhone"`
	VisitDate    string    `json:"VisitDate"`
	Purpose      string    `json:"Purpose,omitempty"`
	OTP          string    `json:"OTP"`
	OTPExpiry    time.Time `json:"OTPExpiry"`
	Status       string    `json:"Status"`
	SiteNumber   string    `json:"SiteNumber"`

	// OTPExpired is derived at read time, never stored. See Expired.
	OTPExpired bool `json:"otpExpired"`
}

// Expired reports whether the pass OTP is no longer valid at the given
// instant. Validity is time-relative, so every consumer recomputes this at
// read time instead of trusting a stored flag: expired iff now >= OTPExpiry.
func (p *VisitorPass) Expired(now time.Time) bool {
	return !now.Before(p.OTPExpiry)
}

// RegisterVisitorRequest represents a resident's visitor pre-registration
type RegisterVisitorRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	VisitDate string `json:"visitDate"`
	Purpose   string `json:"purpose,omitempty"`
}

// VisitorPassReceipt is returned once, synchronously, when a pass is
// issued. There is no later retrieval of the OTP just issued.
type VisitorPassReceipt struct {
	OTP    string    `json:"otp"`
	Expiry time.Time `json:"expiry"`
}

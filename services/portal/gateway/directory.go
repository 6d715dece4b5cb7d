package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	httpclient "github.com/swetha2803/green-avenue-portal/internal/pkg/http"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// Remote function names exposed by the Directory Service.
const (
	fnValidateLogin     = "validateLogin"
	fnCommunityDir      = "getCommunityDirectory"
	fnGetNotices        = "getNotices"
	fnAddNotice         = "addNotice"
	fnGetMyVisitors     = "getMyVisitors"
	fnRegisterVisitor   = "registerVisitor"
	fnGetProperties     = "getProperties"
	fnAddProperty       = "addProperty"
	fnGetPolls          = "getPolls"
	fnVotePoll          = "votePoll"
	fnGetDashboardStats = "getDashboardStats"
	fnGetMyPayments     = "getMyPayments"
	fnGetMyRequests     = "getMyRequests"
	fnSubmitRequest     = "submitServiceRequest"
	fnGetAllUsers       = "getAllUsers"
)

// envelope is the response wrapper every Directory function answers with.
// success:false is a rejection the upstream decided on; anything that never
// yields a decodable envelope is a transport failure.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
	OTP     string          `json:"otp,omitempty"`
	Expiry  time.Time       `json:"expiry,omitempty"`
}

// DirectoryClient talks to the Directory Service over the configured
// transport. Every call carries a single request with a hard client
// deadline; there are no retries.
type DirectoryClient struct {
	transport transport
}

// NewDirectoryClient creates a Directory gateway from configuration.
func NewDirectoryClient(cfg models.DirectoryConfig) (*DirectoryClient, error) {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	client := httpclient.NewClient(cfg.URL, timeout)

	var t transport
	switch cfg.Transport {
	case "query", "":
		t = &queryTransport{client: client}
	case "json":
		t = &jsonTransport{client: client}
	default:
		return nil, fmt.Errorf("unknown directory transport: %s", cfg.Transport)
	}

	return &DirectoryClient{transport: t}, nil
}

// call invokes a remote function and unwraps the response envelope.
func (d *DirectoryClient) call(ctx context.Context, function string, parameters ...interface{}) (*envelope, error) {
	body, err := d.transport.invoke(ctx, function, parameters)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", portal.ErrDirectoryUnavailable, function, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: malformed response: %v", portal.ErrDirectoryUnavailable, function, err)
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request rejected"
		}
		return nil, fmt.Errorf("%w: %s", portal.ErrDirectoryRejected, msg)
	}

	return &env, nil
}

// decodeList unmarshals an envelope's data into a slice. A missing, null, or
// non-array data field means the upstream had nothing to return, not a
// failure, so it decodes as empty.
func decodeList(data json.RawMessage, out interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: malformed list payload: %v", portal.ErrDirectoryUnavailable, err)
	}
	return nil
}

// Healthcheck reports whether the Directory answers at all. A rejection
// still counts as reachable; only transport trouble fails the probe.
func (d *DirectoryClient) Healthcheck(ctx context.Context) error {
	_, err := d.call(ctx, fnGetDashboardStats)
	if err != nil && !portal.IsRejection(err) {
		return err
	}
	return nil
}

// ValidateLogin checks credentials against the Directory's resident sheet.
func (d *DirectoryClient) ValidateLogin(ctx context.Context, identifier, secret string) (*models.Session, error) {
	env, err := d.call(ctx, fnValidateLogin, identifier, secret)
	if err != nil {
		if portal.IsRejection(err) {
			return nil, portal.ErrInvalidCredentials
		}
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(env.User, &session); err != nil {
		return nil, fmt.Errorf("%w: malformed user payload: %v", portal.ErrDirectoryUnavailable, err)
	}
	return &session, nil
}

// GetCommunityDirectory fetches the public resident directory.
func (d *DirectoryClient) GetCommunityDirectory(ctx context.Context) ([]models.Resident, error) {
	env, err := d.call(ctx, fnCommunityDir)
	if err != nil {
		return nil, err
	}

	residents := []models.Resident{}
	if err := decodeList(env.Data, &residents); err != nil {
		return nil, err
	}
	return residents, nil
}

// GetNotices fetches community announcements, newest first.
func (d *DirectoryClient) GetNotices(ctx context.Context) ([]models.Notice, error) {
	env, err := d.call(ctx, fnGetNotices)
	if err != nil {
		return nil, err
	}

	notices := []models.Notice{}
	if err := decodeList(env.Data, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// PostNotice publishes an announcement on behalf of an admin.
func (d *DirectoryClient) PostNotice(ctx context.Context, postedBy string, draft *models.NoticeDraft) error {
	_, err := d.call(ctx, fnAddNotice, draft, postedBy)
	return err
}

// GetMyVisitors fetches the caller's visitor passes.
func (d *DirectoryClient) GetMyVisitors(ctx context.Context, identifier string) ([]models.VisitorPass, error) {
	env, err := d.call(ctx, fnGetMyVisitors, identifier)
	if err != nil {
		return nil, err
	}

	passes := []models.VisitorPass{}
	if err := decodeList(env.Data, &passes); err != nil {
		return nil, err
	}
	return passes, nil
}

// RegisterVisitor stores a freshly issued visitor pass. The passcode and its
// expiry are generated locally before this call; the Directory only records
// them.
func (d *DirectoryClient) RegisterVisitor(ctx context.Context, pass *models.VisitorPass, registeredBy string) error {
	_, err := d.call(ctx, fnRegisterVisitor, pass, registeredBy)
	return err
}

// GetProperties fetches active rent and sale listings.
func (d *DirectoryClient) GetProperties(ctx context.Context) ([]models.Property, error) {
	env, err := d.call(ctx, fnGetProperties)
	if err != nil {
		return nil, err
	}

	properties := []models.Property{}
	if err := decodeList(env.Data, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// PostProperty submits a rent or sale listing.
func (d *DirectoryClient) PostProperty(ctx context.Context, submittedBy string, draft *models.PropertyDraft) error {
	_, err := d.call(ctx, fnAddProperty, draft, submittedBy)
	return err
}

// GetPolls fetches polls with tallies and the caller's own vote state.
func (d *DirectoryClient) GetPolls(ctx context.Context, identifier string) ([]models.Poll, error) {
	env, err := d.call(ctx, fnGetPolls, identifier)
	if err != nil {
		return nil, err
	}

	polls := []models.Poll{}
	if err := decodeList(env.Data, &polls); err != nil {
		return nil, err
	}
	return polls, nil
}

// VotePoll records the caller's vote on a poll option.
func (d *DirectoryClient) VotePoll(ctx context.Context, identifier, pollID, option string) error {
	_, err := d.call(ctx, fnVotePoll, pollID, option, identifier)
	return err
}

// GetDashboardStats fetches the headline counters.
func (d *DirectoryClient) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	env, err := d.call(ctx, fnGetDashboardStats)
	if err != nil {
		return nil, err
	}

	var stats models.DashboardStats
	if len(bytes.TrimSpace(env.Data)) > 0 {
		if err := json.Unmarshal(env.Data, &stats); err != nil {
			return nil, fmt.Errorf("%w: malformed stats payload: %v", portal.ErrDirectoryUnavailable, err)
		}
	}
	return &stats, nil
}

// GetMyPayments fetches the caller's maintenance payment history.
func (d *DirectoryClient) GetMyPayments(ctx context.Context, identifier string) ([]models.Payment, error) {
	env, err := d.call(ctx, fnGetMyPayments, identifier)
	if err != nil {
		return nil, err
	}

	payments := []models.Payment{}
	if err := decodeList(env.Data, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetMyRequests fetches the caller's service requests.
func (d *DirectoryClient) GetMyRequests(ctx context.Context, identifier string) ([]models.ServiceRequest, error) {
	env, err := d.call(ctx, fnGetMyRequests, identifier)
	if err != nil {
		return nil, err
	}

	requests := []models.ServiceRequest{}
	if err := decodeList(env.Data, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// SubmitRequest files a maintenance, security, or facility request.
func (d *DirectoryClient) SubmitRequest(ctx context.Context, identifier string, draft *models.ServiceRequestDraft) error {
	_, err := d.call(ctx, fnSubmitRequest, draft, identifier)
	return err
}

// GetAllUsers fetches every resident account for the admin panel.
func (d *DirectoryClient) GetAllUsers(ctx context.Context) ([]models.Account, error) {
	env, err := d.call(ctx, fnGetAllUsers)
	if err != nil {
		return nil, err
	}

	accounts := []models.Account{}
	if err := decodeList(env.Data, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

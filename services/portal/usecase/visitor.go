package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/logger"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/internal/utils"
	"github.com/swetha2803/green-avenue-portal/services/portal"
)

// RegisterVisitor issues a gate passcode for a pre-registered visitor. The
// OTP and its expiry are generated here, before the Directory is asked to
// record the pass, so a validation failure never costs a network call.
func (uc *PortalUC) RegisterVisitor(ctx context.Context, session *models.Session, req *models.RegisterVisitorRequest) (*models.VisitorPassReceipt, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: visitor name", portal.ErrMissingField)
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("%w: visitor phone", portal.ErrMissingField)
	}
	if req.VisitDate == "" {
		return nil, fmt.Errorf("%w: visit date", portal.ErrMissingField)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return nil, fmt.Errorf("failed to generate passcode: %w", err)
	}
	expiry := time.Now().Add(models.OTPValidity)

	pass := &models.VisitorPass{
		VisitorName:  req.Name,
		VisitorPhone: req.Phone,
		VisitDate:    req.VisitDate,
		Purpose:      req.Purpose,
		OTP:          otp,
		OTPExpiry:    expiry,
		Status:       models.VisitorStatusPending,
		SiteNumber:   session.Site,
	}

	if err := uc.directoryGW.RegisterVisitor(ctx, pass, session.Identifier); err != nil {
		return nil, err
	}

	// The passcode itself stays out of the logs.
	logger.InfoCtx(ctx, "Visitor pass issued",
		logger.String("site", session.Site),
		logger.String("visit_date", req.VisitDate),
		logger.Time("otp_expiry", expiry))

	return &models.VisitorPassReceipt{OTP: otp, Expiry: expiry}, nil
}

// ListVisitors returns the caller's visitor passes with the expired flag
// recomputed against the clock. Whatever the Directory stored for that flag
// is overwritten; only the expiry timestamp is trusted.
func (uc *PortalUC) ListVisitors(ctx context.Context, session *models.Session) ([]models.VisitorPass, error) {
	passes, err := uc.directoryGW.GetMyVisitors(ctx, session.Identifier)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range passes {
		passes[i].OTPExpired = passes[i].Expired(now)
	}
	return passes, nil
}

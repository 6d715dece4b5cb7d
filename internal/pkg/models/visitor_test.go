package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisitorPassExpired(t *testing.T) {
	expiry := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	pass := &VisitorPass{OTP: "123456", OTPExpiry: expiry}

	assert.False(t, pass.Expired(expiry.Add(-time.Second)))
	// The boundary instant itself counts as expired.
	assert.True(t, pass.Expired(expiry))
	assert.True(t, pass.Expired(expiry.Add(time.Second)))
}

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpRange covers the six-digit passcodes 100000..999999 inclusive, so a
// generated code never needs zero padding.
const (
	otpMin   = 100000
	otpRange = 900000
)

// GenerateOTP draws a uniformly random six-digit visitor passcode.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%d", otpMin+n.Int64()), nil
}

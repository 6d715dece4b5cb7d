package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdentifier(t *testing.T) {
	assert.True(t, IsValidIdentifier("rahul@email.com"))
	assert.True(t, IsValidIdentifier("admin@greenavenue.com"))
	assert.True(t, IsValidIdentifier("9876543210"))
	assert.True(t, IsValidIdentifier("+919876543210"))

	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("not an identifier"))
	assert.False(t, IsValidIdentifier("missing-at-sign.com"))
	assert.False(t, IsValidIdentifier("12345"))
}

func TestDisplayNameFromIdentifier(t *testing.T) {
	assert.Equal(t, "rahul", DisplayNameFromIdentifier("rahul@email.com"))
	assert.Equal(t, "admin", DisplayNameFromIdentifier("admin@greenavenue.com"))
	assert.Equal(t, "9876543210", DisplayNameFromIdentifier("9876543210"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "******3210", MaskPhoneNumber("9876543210"))
	assert.Equal(t, "1234", MaskPhoneNumber("1234"))
}

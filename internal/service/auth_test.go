package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthVerify(t *testing.T) {
	auth := NewAuthService("hunter2")

	assert.True(t, auth.Verify("hunter2"))
	assert.False(t, auth.Verify("wrong"))
	assert.False(t, auth.Verify(""))
	assert.False(t, auth.Verify("Hunter2"))
}

func TestAuthEmptyConfiguredPassword(t *testing.T) {
	// an empty submitted secret never passes, even against an empty
	// configured one
	auth := NewAuthService("")
	assert.False(t, auth.Verify(""))
}

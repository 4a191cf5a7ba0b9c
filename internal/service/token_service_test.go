package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "goldengate-mock")

	token, expiry, err := svc.Generate("0xD48592C606533078CB37Eee94f9471f68cfBefE2")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	address, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "0xd48592c606533078cb37eee94f9471f68cfbefe2", address)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("secret-a", time.Hour, "goldengate-mock")
	other := NewJWTTokenService("secret-b", time.Hour, "goldengate-mock")

	token, _, err := svc.Generate("0xabc0000000000000000000000000000000000001")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, "goldengate-mock")

	token, _, err := svc.Generate("0xabc0000000000000000000000000000000000001")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "goldengate-mock")

	_, err := svc.Validate("not.a.jwt")
	assert.Error(t, err)
}

func TestTokenExpiry_Unverified(t *testing.T) {
	svc := NewJWTTokenService("some-other-secret", 2*time.Hour, "goldengate-mock")
	token, expiry, err := svc.Generate("0xabc0000000000000000000000000000000000001")
	require.NoError(t, err)

	// The client does not hold the secret; expiry still reads.
	got, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, expiry, got, time.Second)
}

func TestTokenExpiry_Garbage(t *testing.T) {
	_, err := TokenExpiry("opaque-session-token")
	assert.Error(t, err)
}

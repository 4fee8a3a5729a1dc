package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestCodec_SignAndVerify(t *testing.T) {
	c := NewCodec(testSecret, 15*time.Minute)

	signed, expiresAt, err := c.Sign("user-123", "a@x.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 2*time.Second)

	claims, err := c.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, TypeAccess, claims.TokenType)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestCodec_WireFormat(t *testing.T) {
	c := NewCodec(testSecret, 15*time.Minute)

	signed, _, err := c.Sign("user-123", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	assert.NotContains(t, signed, "=")

	for _, part := range parts {
		_, err := base64.RawURLEncoding.DecodeString(part)
		assert.NoError(t, err)
	}
}

func TestCodec_Verify_TamperedPayload(t *testing.T) {
	c := NewCodec(testSecret, 15*time.Minute)

	signed, _, err := c.Sign("user-123", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	// Well-formed payload claiming a different identity, original signature.
	evil := base64.RawURLEncoding.EncodeToString([]byte(`{"user_id":"user-666","email":"a@x.com","token_type":"access"}`))
	tampered := parts[0] + "." + evil + "." + parts[2]

	_, err = c.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	c := NewCodec(testSecret, 15*time.Minute)
	other := NewCodec("a-different-secret", 15*time.Minute)

	signed, _, err := other.Sign("user-123", "a@x.com")
	require.NoError(t, err)

	_, err = c.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCodec_Verify_Expired(t *testing.T) {
	expired := NewCodec(testSecret, -time.Second)

	signed, _, err := expired.Sign("user-123", "a@x.com")
	require.NoError(t, err)

	// The signature itself is valid; only the expiry is in the past.
	c := NewCodec(testSecret, 15*time.Minute)
	_, err = c.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestCodec_Verify_Malformed(t *testing.T) {
	c := NewCodec(testSecret, 15*time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a token", token: "garbage"},
		{name: "two segments", token: "abc.def"},
		{name: "four segments", token: "a.b.c.d"},
		{name: "invalid base64", token: "!!!.@@@.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Verify(tt.token)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	customerID := uuid.New()

	token, err := NewAccessToken("test-secret", customerID, "rana@example.com", "admin", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	claims, err := VerifyAccessToken("test-secret", token.Token)
	require.NoError(t, err)
	assert.Equal(t, customerID, claims.CustomerID)
	assert.Equal(t, "rana@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret-a", uuid.New(), "a@b.c", "customer", 15)
	require.NoError(t, err)

	_, err = VerifyAccessToken("secret-b", token.Token)
	assert.Error(t, err)
}

func TestRefreshTokenHashing(t *testing.T) {
	refresh, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.Len(t, refresh.Raw, 96)

	// same raw always hashes to the same value, distinct raws do not
	assert.Equal(t, HashToken(refresh.Raw), HashToken(refresh.Raw))
	other, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.NotEqual(t, HashToken(refresh.Raw), HashToken(other.Raw))
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP(6)
	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9')
	}

	assert.Len(t, GenerateOTP(0), 6)
}

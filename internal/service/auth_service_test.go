package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukita/studentbook-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4, // min cost keeps tests fast
	}
}

func TestPasswordHashing(t *testing.T) {
	svc := NewAuthService(testConfig(), nil)

	hash, err := svc.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, svc.CheckPassword(hash, "hunter22"))
	assert.ErrorIs(t, svc.CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(testConfig(), nil)

	token, jti, err := svc.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.AccountID)
	assert.Equal(t, jti, claims.ID)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateTokenRejectsBadInput(t *testing.T) {
	svc := NewAuthService(testConfig(), nil)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)

	// Token signed with a different secret must be rejected.
	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour}, nil)
	token, _, err := other.GenerateToken(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpiry = -time.Minute
	svc := NewAuthService(cfg, nil)

	token, _, err := svc.GenerateToken(42)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

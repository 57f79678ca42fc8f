package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAccess(t *testing.T) {
	secret := "test-secret"
	m := NewJWTManager(secret)

	token, err := m.IssueAccess("user-123", "u@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, tokenTypeAccess, claims.TokenType)
}

func TestJWTManager_VerifyAccess(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.IssueAccess("user-123", "u@example.com", time.Hour)
	require.NoError(t, err)

	userID, err := m.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTManager_VerifyRefresh(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.IssueRefresh("user-123", time.Hour)
	require.NoError(t, err)

	userID, err := m.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTManager_token_types_are_not_interchangeable(t *testing.T) {
	m := NewJWTManager("test-secret")

	refresh, err := m.IssueRefresh("user-123", time.Hour)
	require.NoError(t, err)
	access, err := m.IssueAccess("user-123", "u@example.com", time.Hour)
	require.NoError(t, err)

	_, err = m.VerifyAccess(refresh)
	assert.Error(t, err, "refresh token must not pass access verification")
	_, err = m.VerifyRefresh(access)
	assert.Error(t, err, "access token must not pass refresh verification")
}

func TestJWTManager_Verify_wrong_secret(t *testing.T) {
	token, err := NewJWTManager("secret-a").IssueAccess("user-123", "u@example.com", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b").VerifyAccess(token)
	assert.Error(t, err)
}

func TestJWTManager_Verify_expired(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.IssueAccess("user-123", "u@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = m.VerifyAccess(token)
	assert.Error(t, err)
}

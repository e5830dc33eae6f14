package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tivivek/support-ticketing-system/internal/domain"
)

var testUser = domain.User{
	ID:    "user2",
	Name:  "Sarah Williams",
	Email: "agent@example.com",
	Role:  domain.UserRoleAgent,
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 1440)

	token, expiresAt, err := tm.GenerateToken(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user2", claims.UserID)
	assert.Equal(t, domain.UserRoleAgent, claims.Role)
	assert.Equal(t, TokenKindAccess, claims.Kind)
}

func TestRefreshTokenCarriesKind(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 1440)

	token, _, err := tm.GenerateRefreshToken(testUser)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenKindRefresh, claims.Kind)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 1440)
	other := NewTokenManager("another-secret", 60, 1440)

	token, _, err := tm.GenerateToken(testUser)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 1440)

	_, err := tm.ParseToken("not-a-jwt")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "password123"))
	assert.Error(t, ComparePassword(hash, "wrongpass"))
}

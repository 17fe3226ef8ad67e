package utils

import (
	"testing"
	"time"

	"github.com/dealshub/DealsHub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	user := &models.User{Email: "admin@example.com", IsAdmin: true}
	user.ID = 7
	return user
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken(testUser())
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, true, claims["is_admin"])

	id, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(AccessTokenTTL).Unix(), exp, 5)
}

func TestRefreshTokenType(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateRefreshToken(testUser())
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])

	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(RefreshTokenTTL).Unix(), exp, 5)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAccessToken(testUser())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", hash)

	assert.True(t, CheckPassword("Passw0rd", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

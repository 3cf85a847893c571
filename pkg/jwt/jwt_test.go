package jwt

import (
	"testing"
	"time"

	"therapy-booking/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	service := newService("test-secret")
	userID := uuid.New()

	token, tokenID, err := service.GenerateAccessToken(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, AccessToken, claims.TokenType)
	require.Equal(t, tokenID, claims.TokenID)
}

func TestEveryIssuanceIsDistinct(t *testing.T) {
	service := newService("test-secret")
	userID := uuid.New()

	// same identity, same instant: the embedded token ID still differs
	first, firstID, err := service.GenerateAccessToken(userID, "admin")
	require.NoError(t, err)
	second, secondID, err := service.GenerateAccessToken(userID, "admin")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.NotEqual(t, firstID, secondID)
}

func TestRefreshTokenCarriesRefreshType(t *testing.T) {
	service := newService("test-secret")

	token, _, err := service.GenerateRefreshToken(uuid.New(), "admin")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newService("secret-a").GenerateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = newService("secret-b").ValidateToken(token)
	require.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: time.Hour,
	})

	token, _, err := service.GenerateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
}

package utils

import (
	"testing"
	"time"

	"doctorsportal/config"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.AppConfig.JWTSecret = "test-secret"
	m.Run()
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("alice@x.com", time.Hour)
	require.NoError(t, err)

	email, err := ExtractEmailFromToken(token)

	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("alice@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)

	assert.Error(t, err)
}

func TestForgedTokenRejected(t *testing.T) {
	claims := jwt.MapClaims{
		"email": "alice@x.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(forged)

	assert.Error(t, err)
}

func TestTokenWithoutEmailClaimRejected(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)

	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, err := ExtractEmailFromToken("not-a-jwt")

	assert.Error(t, err)
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("minha-senha")
	require.NoError(t, err)

	assert.NotEqual(t, "minha-senha", hash)
	assert.True(t, CheckPassword(hash, "minha-senha"))
	assert.False(t, CheckPassword(hash, "outra-senha"))

	again, err := HashPassword("minha-senha")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "bcrypt usa salt por hash")
}

func TestSignJWT(t *testing.T) {
	token, err := SignJWT("segredo", 42, "mariasilva", 60)
	require.NoError(t, err)

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("segredo"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "mariasilva", claims.User)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestSignJWTWrongSecret(t *testing.T) {
	token, err := SignJWT("segredo", 42, "mariasilva", 60)
	require.NoError(t, err)

	var claims Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("outro-segredo"), nil
	})
	assert.Error(t, err)
}

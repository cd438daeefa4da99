package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_HOURS", "")
	require.NoError(t, InitJWTSecret())

	tokenString, err := GenerateJWT(42, "ali@example.com")
	require.NoError(t, err)

	token, err := VerifyJWT(tokenString)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, issuer, claims["iss"])
	assert.EqualValues(t, 42, claims["user_id"])
	assert.Equal(t, "ali@example.com", claims["email"])
}

func TestVerifyJWTRejectsForeignIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_HOURS", "")
	require.NoError(t, InitJWTSecret())

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":     "someone-else",
		"user_id": 42,
	})
	tokenString, err := foreign.SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = VerifyJWT(tokenString)
	assert.Error(t, err)
}

func TestVerifyJWTRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_HOURS", "")
	require.NoError(t, InitJWTSecret())

	tokenString, err := GenerateJWT(42, "ali@example.com")
	require.NoError(t, err)

	_, err = VerifyJWT(tokenString + "x")
	assert.Error(t, err)
}

func TestInitJWTSecretValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")
	assert.Error(t, InitJWTSecret())

	t.Setenv("TOKEN_TTL_HOURS", "-3")
	assert.Error(t, InitJWTSecret())

	t.Setenv("TOKEN_TTL_HOURS", "24")
	assert.NoError(t, InitJWTSecret())
}

package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifier_RoundTrip(t *testing.T) {
	v := NewJWTVerifier("super-secret-jwt-token-with-at-least-32-characters")
	tok, exp, err := v.Sign("user-1", "rao@example.com", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := v.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "rao@example.com", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	secret := "super-secret-jwt-token-with-at-least-32-characters"
	v := NewJWTVerifier(secret)

	expired, _, err := v.Sign("user-1", "", -time.Minute)
	require.NoError(t, err)

	wrongKey, _, err := NewJWTVerifier("another-secret").Sign("user-1", "", time.Hour)
	require.NoError(t, err)

	noSub, _, err := v.Sign("", "", time.Hour)
	require.NoError(t, err)

	wrongAud, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		Audience:  jwt.ClaimStrings{"anon"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}).SignedString([]byte(secret))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:  "user-1",
		Audience: jwt.ClaimStrings{"authenticated"},
	}}).SignedString([]byte(secret))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"expired":        expired,
		"wrong key":      wrongKey,
		"no subject":     noSub,
		"wrong audience": wrongAud,
		"no expiry":      noExp,
		"garbage":        "not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v.Parse(tok)
			assert.Error(t, err)
		})
	}
}

func TestJWTVerifier_EmptySecret(t *testing.T) {
	tok, _, err := NewJWTVerifier("x").Sign("user-1", "", time.Hour)
	require.NoError(t, err)
	_, err = NewJWTVerifier("").Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

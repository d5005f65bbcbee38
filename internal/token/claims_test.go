package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signToken builds a real HS256 token. Decode never checks the signature,
// so the secret is arbitrary.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestDecode(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signToken(t, jwt.MapClaims{
		"id":   "6407abc",
		"name": "Ahmed",
		"exp":  exp.Unix(),
	})

	claims, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "6407abc", claims.UserID)
	assert.Equal(t, "Ahmed", claims.Name)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
	assert.False(t, claims.Expired())
}

func TestDecode_NoExpiry(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"id": "u1"})

	claims, err := Decode(raw)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired())
}

func TestDecode_Expired(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"id":  "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := Decode(raw)
	require.NoError(t, err)
	assert.True(t, claims.Expired())
}

func TestDecode_MissingIDClaim(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"name": "Ahmed"})

	_, err := Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_Garbage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not a jwt", "hello world"},
		{"wrong segment count", "a.b"},
		{"bad base64", "!!.!!.!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

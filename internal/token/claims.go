package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for claim decoding.
var (
	// ErrInvalidToken means the token could not be decoded at all.
	ErrInvalidToken = errors.New("token: invalid token")
	// ErrExpired means the token decoded but its expiry is in the past.
	ErrExpired = errors.New("token: token expired")
)

// Claims is the identity embedded in the bearer token.
type Claims struct {
	UserID    string
	Name      string
	ExpiresAt time.Time
}

// Expired reports whether the expiry timestamp is in the past. Tokens
// without an exp claim never expire client-side; the server remains the
// authority either way.
func (c *Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(time.Now())
}

// Decode parses the token's embedded claims without verifying the
// signature. The client holds no signing secret; the server re-validates
// the token on every authenticated request. Claims must still not be
// trusted without checking Expired before use.
func Decode(raw string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, _ := mapClaims["id"].(string)
	if userID == "" {
		return nil, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}

	claims := &Claims{UserID: userID}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// Package auth issues and verifies the bearer tokens that gate mutating
// API calls.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Subject is the fixed subject claim carried by every issued token.
const Subject = "workshop-admin"

// RoleAdmin is the role required for mutating operations.
const RoleAdmin = "Admin"

// ErrInvalidToken is returned when a token fails signature, issuer,
// audience or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Config defines how tokens are signed and verified.
type Config struct {
	Key      []byte
	Issuer   string
	Audience string
	TTL      time.Duration
	Now      func() time.Time
}

// Claims captures the registered claims plus the role claim.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Issue signs a new HS256 token carrying the fixed subject, a unique token
// ID and the Admin role.
func Issue(cfg Config) (string, error) {
	now := cfg.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   Subject,
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
			ID:        uuid.NewString(),
		},
		Role: RoleAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and validates signature, issuer, audience and
// expiry. Returns the validated claims.
func Verify(cfg Config, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return cfg.Key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(cfg.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Package token implements the TokenIssuer port with HS256 JWTs.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quotely/quotely-api/internal/domain"
)

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// JWTIssuer signs and verifies HS256 bearer tokens. The subject claim
// carries the user id.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// Config configures the issuer.
type Config struct {
	// Secret is the HMAC signing key.
	Secret string

	// Issuer is the iss claim value.
	Issuer string

	// TTL is the token lifetime; DefaultTTL when zero.
	TTL time.Duration
}

// NewJWTIssuer creates a JWT issuer.
func NewJWTIssuer(cfg Config) (*JWTIssuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &JWTIssuer{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token for the given user.
func (i *JWTIssuer) Issue(userID string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    i.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify validates a token and returns the user it was issued for.
func (i *JWTIssuer) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}

			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", domain.NewUnauthorizedError("invalid token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.NewUnauthorizedError("invalid token")
	}

	return claims.Subject, nil
}

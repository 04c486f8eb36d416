// Package identity implements the identity provider: signed session tokens and
// password hashing.
package identity

import (
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errs.NewForbiddenError("invalid or expired token")

type claims struct {
	Role user.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService issues HS256 tokens whose subject is the user id.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("jwt ttl", ttl, "1ns", "unbounded")
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *JWTTokenService) Issue(identity user.Identity) (string, error) {
	if err := identity.Validate(); err != nil {
		return "", err
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTTokenService) Verify(raw string) (user.Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return user.Identity{}, errs.NewForbiddenErrorWithCause(errInvalidToken.Action, err)
	}

	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return user.Identity{}, errs.NewForbiddenErrorWithCause(errInvalidToken.Action, err)
	}
	identity, err := user.NewIdentity(id, c.Role)
	if err != nil {
		return user.Identity{}, errs.NewForbiddenErrorWithCause(errInvalidToken.Action, err)
	}
	return identity, nil
}

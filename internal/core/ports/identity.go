package ports

import (
	"eats/internal/core/domain/model/user"
)

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(identity user.Identity) (string, error)

	// Verify returns errs.ForbiddenError for malformed, expired or forged tokens.
	Verify(token string) (user.Identity, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

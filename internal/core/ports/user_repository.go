package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
)

// UserRepository stores accounts. Add and Update fail with errs.ConflictError
// when the e-mail address is already taken.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// VerificationRepository keeps at most one pending code per user.
type VerificationRepository interface {
	// Save replaces any pending code of the same user.
	Save(ctx context.Context, v user.Verification) error
	GetByCode(ctx context.Context, code string) (user.Verification, error)
	DeleteByUser(ctx context.Context, userID kernel.UUID) error
}

package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetUserProfileQueryIsNotConstructed = errors.New(
		"GetUserProfileQuery must be created via NewGetUserProfileQuery constructor",
	)
)

// GetUserProfileQuery fetches the public profile of a user. The "me" operation
// is this query with the caller's own id.
type GetUserProfileQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetUserProfileQuery(userID kernel.UUID) (GetUserProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserProfileQuery{}, err
	}
	return GetUserProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetUserProfileQueryIsNotConstructed)
}

func (q GetUserProfileQuery) UserID() kernel.UUID {
	return q.userID
}

type GetUserProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetUserProfileQueryHandler(db *gorm.DB) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{db: db}
}

func (h GetUserProfileQueryHandler) Handle(
	ctx context.Context,
	query GetUserProfileQuery,
) (profile UserProfileView, err error) {
	defer func() { err = errs.Internal("could not load user", err) }()

	if err = query.Validate(); err != nil {
		return UserProfileView{}, err
	}

	var row struct {
		ID       uuid.UUID
		Email    string
		Role     string
		Verified bool
	}
	res := h.db.WithContext(ctx).Raw(`
		SELECT id, email, role, verified
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Scan(&row)
	if res.Error != nil {
		return UserProfileView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return UserProfileView{}, errs.NewObjectNotFoundError("user", query.UserID())
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return UserProfileView{}, err
	}
	role, err := user.ParseRole(row.Role)
	if err != nil {
		return UserProfileView{}, err
	}
	return UserProfileView{ID: id, Email: row.Email, Role: role, Verified: row.Verified}, nil
}

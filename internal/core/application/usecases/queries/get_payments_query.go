package queries

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetPaymentsQueryIsNotConstructed = errors.New(
		"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
	)
)

// GetPaymentsQuery lists the promotion payments an owner made.
type GetPaymentsQuery struct {
	owner user.Identity
	guard guard.ConstructorGuard
}

func NewGetPaymentsQuery(owner user.Identity) (GetPaymentsQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetPaymentsQuery{}, err
	}
	return GetPaymentsQuery{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

func (q GetPaymentsQuery) Owner() user.Identity {
	return q.owner
}

type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle returns the payments newest first. Only owners make payments.
func (h GetPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsQuery,
) (result []PaymentView, err error) {
	defer func() { err = errs.Internal("could not load payments", err) }()

	if err = query.Validate(); err != nil {
		return nil, err
	}
	if query.Owner().Role != user.Owner {
		return nil, errs.NewForbiddenError("only owners have payments")
	}

	var rows []struct {
		ID            uuid.UUID
		TransactionID string
		RestaurantID  uuid.UUID
		CreatedAt     time.Time
	}
	if err = h.db.WithContext(ctx).Raw(`
		SELECT id, transaction_id, restaurant_id, created_at
		FROM payments
		WHERE owner_id = ?
		ORDER BY created_at DESC, id
	`, query.Owner().ID.Bytes()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result = make([]PaymentView, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		restaurantID, idErr := kernel.UUIDFromBytes(row.RestaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		result = append(result, PaymentView{
			ID:            id,
			TransactionID: row.TransactionID,
			RestaurantID:  restaurantID,
			CreatedAt:     row.CreatedAt,
		})
	}
	return result, nil
}

// Package payment records promotion payments made by restaurant owners. Gateway
// semantics are out of scope: a payment is only a transaction id attached to an
// owner and one of their restaurants.
package payment

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is an immutable record of a gateway transaction.
type Payment struct {
	id            kernel.UUID
	transactionID string
	ownerID       kernel.UUID
	restaurantID  kernel.UUID
	createdAt     time.Time

	isConstructed bool
}

// NewPayment validates and builds a payment record.
func NewPayment(
	id kernel.UUID,
	transactionID string,
	ownerID kernel.UUID,
	restaurantID kernel.UUID,
	createdAt time.Time,
) (*Payment, error) {
	var txErr error
	if transactionID == "" {
		txErr = errs.NewValueIsRequiredError("transactionId")
	}
	if err := errors.Join(id.Validate(), txErr, ownerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	return &Payment{
		id:            id,
		transactionID: transactionID,
		ownerID:       ownerID,
		restaurantID:  restaurantID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) TransactionID() string {
	return p.transactionID
}

func (p *Payment) OwnerID() kernel.UUID {
	return p.ownerID
}

func (p *Payment) RestaurantID() kernel.UUID {
	return p.restaurantID
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

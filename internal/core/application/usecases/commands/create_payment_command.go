package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand records a promotion payment made by an owner for one of
// their restaurants.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	owner         user.Identity
	restaurantID  kernel.UUID
	transactionID string

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(
	paymentID kernel.UUID,
	owner user.Identity,
	restaurantID kernel.UUID,
	transactionID string,
) (CreatePaymentCommand, error) {
	var txErr error
	if transactionID == "" {
		txErr = errs.NewValueIsRequiredError("transactionId")
	}
	if err := errors.Join(
		paymentID.Validate(),
		validateOwnerAndID(owner, "restaurantId", restaurantID),
		txErr,
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return CreatePaymentCommand{
		paymentID:     paymentID,
		owner:         owner,
		restaurantID:  restaurantID,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c CreatePaymentCommand) Owner() user.Identity { return c.owner }
func (c CreatePaymentCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreatePaymentCommand) TransactionID() string { return c.transactionID }

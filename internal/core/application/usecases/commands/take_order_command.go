package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand assigns the calling driver to an order.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	driver  user.Identity
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTakeOrderCommand(driver user.Identity, orderID kernel.UUID) (TakeOrderCommand, error) {
	cmd := TakeOrderCommand{guard: guard.NewConstructorGuard()}

	var driverErr error
	if err := driver.Validate(); err != nil {
		driverErr = errs.NewValueIsRequiredErrorWithCause("driver", err)
	}
	var orderErr error
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := errors.Join(driverErr, orderErr); err != nil {
		return TakeOrderCommand{}, err
	}

	cmd.driver = driver
	cmd.orderID = orderID
	return cmd, nil
}

func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

func (c TakeOrderCommand) Driver() user.Identity {
	return c.driver
}

func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand requests a status change of an order on behalf of actor.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	actor   user.Identity
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(actor user.Identity, orderID kernel.UUID, status order.Status) (EditOrderCommand, error) {
	cmd := EditOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) Actor() user.Identity {
	return c.actor
}

func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c EditOrderCommand) Status() order.Status {
	return c.status
}

func (c *EditOrderCommand) setActor(actor user.Identity) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	c.actor = actor
	return nil
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

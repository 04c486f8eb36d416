package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested dish with its selected options.
type OrderItemInput struct {
	DishID  kernel.UUID
	Options []order.ItemOption
}

// CreateOrderCommand represents a customer placing an order at a restaurant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, restaurantID, []OrderItemInput{
//	    {DishID: burgerID, Options: []order.ItemOption{{Name: "Pickle"}}},
//	})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customer     user.Identity
	restaurantID kernel.UUID
	items        []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and requires at least one item.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer user.Identity,
	restaurantID kernel.UUID,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() user.Identity {
	return c.customer
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) Items() []OrderItemInput {
	return append([]OrderItemInput(nil), c.items...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer user.Identity) error {
	if err := customer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.DishID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("dishId", err)
		}
	}
	c.items = append([]OrderItemInput(nil), items...)
	return nil
}

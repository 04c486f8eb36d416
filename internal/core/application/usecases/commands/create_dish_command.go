package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// DishInput carries the menu fields of a dish.
type DishInput struct {
	Name        string
	Description string
	Photo       string
	Price       kernel.Money
	Options     []restaurant.Option
}

// CreateDishCommand adds a dish to a restaurant of the calling owner.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	owner        user.Identity
	restaurantID kernel.UUID
	input        DishInput

	guard guard.ConstructorGuard
}

func NewCreateDishCommand(
	dishID kernel.UUID,
	owner user.Identity,
	restaurantID kernel.UUID,
	input DishInput,
) (CreateDishCommand, error) {
	var dishErr error
	if err := dishID.Validate(); err != nil {
		dishErr = errs.NewValueIsRequiredErrorWithCause("dishId", err)
	}
	if err := errors.Join(dishErr, validateOwnerAndID(owner, "restaurantId", restaurantID)); err != nil {
		return CreateDishCommand{}, err
	}

	return CreateDishCommand{
		dishID:       dishID,
		owner:        owner,
		restaurantID: restaurantID,
		input:        input,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) DishID() kernel.UUID { return c.dishID }
func (c CreateDishCommand) Owner() user.Identity { return c.owner }
func (c CreateDishCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateDishCommand) Input() DishInput { return c.input }

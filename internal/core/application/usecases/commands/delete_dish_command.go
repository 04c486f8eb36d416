package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrDeleteDishCommandIsNotConstructed = errors.New(
	"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
)

type DeleteDishCommand struct { //nolint:recvcheck //using for validation
	owner  user.Identity
	dishID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDishCommand(owner user.Identity, dishID kernel.UUID) (DeleteDishCommand, error) {
	if err := validateOwnerAndID(owner, "dishId", dishID); err != nil {
		return DeleteDishCommand{}, err
	}
	return DeleteDishCommand{owner: owner, dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

func (c DeleteDishCommand) Owner() user.Identity { return c.owner }
func (c DeleteDishCommand) DishID() kernel.UUID { return c.dishID }

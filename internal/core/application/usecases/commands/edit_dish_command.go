package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrEditDishCommandIsNotConstructed = errors.New(
	"EditDishCommand must be created via NewEditDishCommand constructor",
)

// DishChanges lists the fields to change; nil fields stay as they are.
type DishChanges struct {
	Name        *string
	Description *string
	Photo       *string
	Price       *kernel.Money
	Options     []restaurant.Option
}

type EditDishCommand struct { //nolint:recvcheck //using for validation
	owner   user.Identity
	dishID  kernel.UUID
	changes DishChanges

	guard guard.ConstructorGuard
}

func NewEditDishCommand(owner user.Identity, dishID kernel.UUID, changes DishChanges) (EditDishCommand, error) {
	if err := validateOwnerAndID(owner, "dishId", dishID); err != nil {
		return EditDishCommand{}, err
	}
	return EditDishCommand{owner: owner, dishID: dishID, changes: changes, guard: guard.NewConstructorGuard()}, nil
}

func (c EditDishCommand) Validate() error {
	return c.guard.Validate(ErrEditDishCommandIsNotConstructed)
}

func (c EditDishCommand) Owner() user.Identity { return c.owner }
func (c EditDishCommand) DishID() kernel.UUID { return c.dishID }
func (c EditDishCommand) Changes() DishChanges { return c.changes }

package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	owner        user.Identity
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRestaurantCommand(owner user.Identity, restaurantID kernel.UUID) (DeleteRestaurantCommand, error) {
	if err := validateOwnerAndID(owner, "restaurantId", restaurantID); err != nil {
		return DeleteRestaurantCommand{}, err
	}
	return DeleteRestaurantCommand{owner: owner, restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

func (c DeleteRestaurantCommand) Owner() user.Identity { return c.owner }
func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }

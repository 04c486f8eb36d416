package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrEditRestaurantCommandIsNotConstructed = errors.New(
	"EditRestaurantCommand must be created via NewEditRestaurantCommand constructor",
)

// RestaurantChanges lists the fields to change; nil fields stay as they are.
type RestaurantChanges struct {
	Name         *string
	Address      *string
	CoverImage   *string
	CategoryName *string
}

type EditRestaurantCommand struct { //nolint:recvcheck //using for validation
	owner        user.Identity
	restaurantID kernel.UUID
	changes      RestaurantChanges

	guard guard.ConstructorGuard
}

func NewEditRestaurantCommand(
	owner user.Identity,
	restaurantID kernel.UUID,
	changes RestaurantChanges,
) (EditRestaurantCommand, error) {
	if err := validateOwnerAndID(owner, "restaurantId", restaurantID); err != nil {
		return EditRestaurantCommand{}, err
	}
	return EditRestaurantCommand{
		owner:        owner,
		restaurantID: restaurantID,
		changes:      changes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c EditRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrEditRestaurantCommandIsNotConstructed)
}

func (c EditRestaurantCommand) Owner() user.Identity { return c.owner }
func (c EditRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c EditRestaurantCommand) Changes() RestaurantChanges { return c.changes }

// validateOwnerAndID is shared by the catalog commands acting on one record.
func validateOwnerAndID(owner user.Identity, param string, id kernel.UUID) error {
	var ownerErr, idErr error
	if err := owner.Validate(); err != nil {
		ownerErr = errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	if err := id.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return errors.Join(ownerErr, idErr)
}

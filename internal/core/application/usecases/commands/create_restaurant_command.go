package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant for the calling owner.
// categoryName is optional; an unknown category is created on the fly.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	owner        user.Identity
	name         string
	address      string
	coverImage   string
	categoryName string

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	owner user.Identity,
	name, address, coverImage, categoryName string,
) (CreateRestaurantCommand, error) {
	var ownerErr error
	if err := owner.Validate(); err != nil {
		ownerErr = errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	if err := errors.Join(restaurantID.Validate(), ownerErr); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		restaurantID: restaurantID,
		owner:        owner,
		name:         name,
		address:      address,
		coverImage:   coverImage,
		categoryName: categoryName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateRestaurantCommand) Owner() user.Identity { return c.owner }
func (c CreateRestaurantCommand) Name() string { return c.name }
func (c CreateRestaurantCommand) Address() string { return c.address }
func (c CreateRestaurantCommand) CoverImage() string { return c.coverImage }
func (c CreateRestaurantCommand) CategoryName() string { return c.categoryName }

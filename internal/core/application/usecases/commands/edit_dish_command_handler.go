package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

// EditDishCommandHandler changes a dish of a restaurant the caller owns.
// Orders already placed keep the prices they were created with.
type EditDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewEditDishCommandHandler(uowFactory CatalogUoWFactory) EditDishCommandHandler {
	return EditDishCommandHandler{uowFactory: uowFactory}
}

func (h EditDishCommandHandler) Handle(ctx context.Context, cmd EditDishCommand) (err error) {
	defer func() {
		err = errs.Internal("could not edit dish", err)
	}()

	if err = cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dishes := uow.DishRepository()
	dish, err := dishes.Get(ctx, cmd.DishID())
	if err != nil {
		return err
	}

	if _, err = uow.RestaurantOwnershipQueries().GetOwned(ctx, cmd.Owner().ID, dish.RestaurantID()); err != nil {
		return err
	}

	c := cmd.Changes()
	if err = dish.Edit(c.Name, c.Description, c.Photo, c.Price, c.Options); err != nil {
		return err
	}

	if err = dishes.Update(ctx, dish); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

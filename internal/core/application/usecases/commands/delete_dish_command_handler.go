package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

type DeleteDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteDishCommandHandler(uowFactory CatalogUoWFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{uowFactory: uowFactory}
}

func (h DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) (err error) {
	defer func() {
		err = errs.Internal("could not delete dish", err)
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

	if err = dishes.Delete(ctx, dish.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

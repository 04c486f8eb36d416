package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

// DeleteRestaurantCommandHandler removes a restaurant of the caller together
// with its menu. Orders placed there are kept.
type DeleteRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteRestaurantCommandHandler(uowFactory CatalogUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) (err error) {
	defer func() {
		err = errs.Internal("could not delete restaurant", err)
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

	r, err := uow.RestaurantOwnershipQueries().GetOwned(ctx, cmd.Owner().ID, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

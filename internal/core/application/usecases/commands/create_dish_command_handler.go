package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

type CreateDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateDishCommandHandler(uowFactory CatalogUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{uowFactory: uowFactory}
}

func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (err error) {
	defer func() {
		err = errs.Internal("could not create dish", err)
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

	in := cmd.Input()
	dish, err := restaurant.NewDish(cmd.DishID(), r.ID(), in.Name, in.Description, in.Photo, in.Price, in.Options)
	if err != nil {
		return err
	}

	if err = uow.DishRepository().Add(ctx, dish); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory CatalogUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) (err error) {
	defer func() {
		err = errs.Internal("could not create restaurant", err)
	}()

	if err = cmd.Validate(); err != nil {
		return err
	}
	if cmd.Owner().Role != user.Owner {
		return errs.NewForbiddenError("only owners can create restaurants")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var categoryID *kernel.UUID
	if strings.TrimSpace(cmd.CategoryName()) != "" {
		category, catErr := uow.CategoryQueries().GetOrCreate(ctx, cmd.CategoryName())
		if catErr != nil {
			return catErr
		}
		id := category.ID()
		categoryID = &id
	}

	r, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.Owner().ID, categoryID, cmd.Name(), cmd.Address(), cmd.CoverImage(),
	)
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

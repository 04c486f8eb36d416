package commands

import (
	"context"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// EditRestaurantCommandHandler applies changes to a restaurant of the caller.
type EditRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewEditRestaurantCommandHandler(uowFactory CatalogUoWFactory) EditRestaurantCommandHandler {
	return EditRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h EditRestaurantCommandHandler) Handle(ctx context.Context, cmd EditRestaurantCommand) (err error) {
	defer func() {
		err = errs.Internal("could not edit restaurant", err)
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

	changes := cmd.Changes()
	var categoryID *kernel.UUID
	if changes.CategoryName != nil && strings.TrimSpace(*changes.CategoryName) != "" {
		category, catErr := uow.CategoryQueries().GetOrCreate(ctx, *changes.CategoryName)
		if catErr != nil {
			return catErr
		}
		id := category.ID()
		categoryID = &id
	}

	if err = r.Edit(changes.Name, changes.Address, changes.CoverImage, categoryID); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

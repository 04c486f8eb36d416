package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"
)

// CreateOrderCommandHandler places an order.
//
// The restaurant and every dish are loaded first; a missing one fails with
// errs.ObjectNotFoundError before anything is written. Line prices are computed
// by services.PriceCalculator and frozen on the items. After the commit a
// new-pending-order event is queued for the restaurant owner.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  OrderEventPublisher
	calculator services.PriceCalculator
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher OrderEventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		calculator: services.NewPriceCalculator(),
		now:        time.Now,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (err error) {
	defer func() {
		err = errs.Internal("could not create order", err)
	}()

	if err = cmd.Validate(); err != nil {
		return err
	}
	if cmd.Customer().Role != user.Client {
		return errs.NewForbiddenError("only clients can place orders")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	dishes := uow.DishRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, in := range cmd.Items() {
		dish, dishErr := dishes.Get(ctx, in.DishID)
		if dishErr != nil {
			return dishErr
		}
		if !dish.RestaurantID().IsEqual(r.ID()) {
			return errs.NewObjectNotFoundError("dish", in.DishID.String())
		}
		if err = h.calculator.ValidateSelection(dish, in.Options); err != nil {
			return err
		}

		item, itemErr := order.NewItem(dish.ID(), in.Options, h.calculator.ComputeLinePrice(dish, in.Options))
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Customer().ID, r.ID(), r.OwnerID(), items, h.now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PendingOrder(o)
	return nil
}

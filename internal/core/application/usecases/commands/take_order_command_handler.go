package commands

import (
	"context"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// TakeOrderCommandHandler assigns a driver to an order. The status is left
// untouched.
//
// At most one driver is ever assigned: the aggregate refuses a second Take and
// the repository refuses to overwrite a version that moved on, so of two
// concurrent takes exactly one commits and the other fails with
// errs.ConflictError.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  OrderEventPublisher
}

func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory, publisher OrderEventPublisher) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) (err error) {
	defer func() {
		err = errs.Internal("could not take order", err)
	}()

	if err = cmd.Validate(); err != nil {
		return err
	}
	if cmd.Driver().Role != user.Delivery {
		return errs.NewForbiddenError("only drivers can take orders")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Take(cmd.Driver().ID); err != nil {
		return err
	}

	if err = orders.Update(ctx, o); err != nil {
		return concurrentUpdateToConflict(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.OrderStatusUpdated(o)
	return nil
}

package commands

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"
)

// EditOrderCommandHandler moves an order to a new status.
//
// Errors:
//   - errs.ObjectNotFoundError: no such order
//   - errs.ForbiddenError: the actor may not see the order or may not request the status
//   - errs.ConflictError: the order is Delivered or changed concurrently
//
// After the commit an order-status-updated event is queued, plus order-cooked
// when an owner marked the order Cooked.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  OrderEventPublisher
	policy     services.AccessPolicy
}

func NewEditOrderCommandHandler(uowFactory OrderUoWFactory, publisher OrderEventPublisher) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (err error) {
	defer func() {
		err = errs.Internal("could not edit order", err)
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

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	if !h.policy.CanView(actor, o) {
		return errs.NewForbiddenError("you can't see this order")
	}
	if !h.policy.CanEdit(actor, o, cmd.Status()) {
		return errs.NewForbiddenError("you can't set this status")
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orders.Update(ctx, o); err != nil {
		return concurrentUpdateToConflict(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.OrderStatusUpdated(o)
	if actor.Role == user.Owner && o.Status() == order.Cooked {
		h.publisher.OrderCooked(o)
	}
	return nil
}

// concurrentUpdateToConflict reports a lost optimistic update as a conflict.
func concurrentUpdateToConflict(err error) error {
	if errors.Is(err, errs.ErrConcurrentUpdate) {
		return errs.NewConflictErrorWithCause("order was changed by another request", err)
	}
	return err
}

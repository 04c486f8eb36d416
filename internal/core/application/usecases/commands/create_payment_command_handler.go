package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"
)

// CreatePaymentCommandHandler stores the payment and promotes the restaurant
// for restaurant.PromotionPeriod starting now.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	now        func() time.Time
}

func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (err error) {
	defer func() {
		err = errs.Internal("could not create payment", err)
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

	now := h.now().UTC()
	p, err := payment.NewPayment(cmd.PaymentID(), cmd.TransactionID(), cmd.Owner().ID, r.ID(), now)
	if err != nil {
		return err
	}
	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return err
	}

	r.Promote(now)
	if err = uow.RestaurantRepository().Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

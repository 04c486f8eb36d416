package commands

import (
	"context"
	"time"

	"eats/internal/pkg/errs"
)

type ExpirePromotionsCommandHandler struct {
	uowFactory PaymentUoWFactory
	now        func() time.Time
}

func NewExpirePromotionsCommandHandler(uowFactory PaymentUoWFactory) ExpirePromotionsCommandHandler {
	return ExpirePromotionsCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns how many restaurants lost their promotion.
func (h ExpirePromotionsCommandHandler) Handle(ctx context.Context, cmd ExpirePromotionsCommand) (expired int, err error) {
	defer func() {
		err = errs.Internal("could not expire promotions", err)
	}()

	if err = cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now().UTC()
	restaurants := uow.RestaurantRepository()
	ended, err := restaurants.ListPromotionEndedBy(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, r := range ended {
		if !r.ExpirePromotion(now) {
			continue
		}
		if err = restaurants.Update(ctx, r); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return expired, nil
}

package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler loads the order aggregate, checks the viewer against the
// access policy and decorates the result with the restaurant it was placed at.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	orders ports.OrderRepository
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB, orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, orders: orders, policy: services.NewAccessPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (view OrderView, err error) {
	defer func() { err = errs.Internal("could not load order", err) }()

	if err = query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	if !h.policy.CanView(query.Viewer(), o) {
		return OrderView{}, errs.NewForbiddenError("you can't see that")
	}

	ref, err := h.restaurantRef(ctx, o.RestaurantID())
	if err != nil {
		return OrderView{}, err
	}
	return orderViewFromAggregate(o, ref), nil
}

// restaurantRef falls back to the bare id when the restaurant was deleted after
// the order was placed.
func (h GetOrderQueryHandler) restaurantRef(ctx context.Context, id kernel.UUID) (RestaurantRef, error) {
	var row struct {
		Name       string
		Address    string
		CoverImage string
	}
	res := h.db.WithContext(ctx).Raw(`
		SELECT name, address, cover_image
		FROM restaurants
		WHERE id = ?
	`, id.Bytes()).Scan(&row)
	if res.Error != nil {
		return RestaurantRef{}, res.Error
	}
	if res.RowsAffected == 0 {
		return RestaurantRef{ID: id}, nil
	}
	return RestaurantRef{ID: id, Name: row.Name, Address: row.Address, CoverImage: row.CoverImage}, nil
}

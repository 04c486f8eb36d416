package queries

import (
	"errors"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists the orders visible to viewer, newest first.
// The scope follows the viewer's role: customers see the orders they placed,
// drivers the orders they took and owners the orders of their restaurants.
// An optional status narrows the result.
//
// Example:
//
//	cooked := order.Cooked
//	query, err := NewGetOrdersQuery(identity, &cooked)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID, o.Status, o.Total)
//	}
type GetOrdersQuery struct {
	viewer user.Identity
	status *order.Status
	guard  guard.ConstructorGuard
}

// NewGetOrdersQuery validates the viewer and, when given, the status filter.
func NewGetOrdersQuery(viewer user.Identity, status *order.Status) (GetOrdersQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	q := GetOrdersQuery{viewer: viewer, guard: guard.NewConstructorGuard()}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		s := *status
		q.status = &s
	}
	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Viewer() user.Identity {
	return q.viewer
}

// Status returns nil when every status is requested.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

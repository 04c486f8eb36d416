package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery fetches a single order on behalf of viewer. Only the customer,
// the restaurant owner and the assigned driver may see it.
type GetOrderQuery struct {
	viewer  user.Identity
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(viewer user.Identity, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(viewer.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{viewer: viewer, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Viewer() user.Identity {
	return q.viewer
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

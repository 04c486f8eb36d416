package notifications

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
)

const (
	TopicNewPendingOrder    = "new-pending-order"
	TopicOrderCooked        = "order-cooked"
	TopicOrderStatusUpdated = "order-status-updated"
)

// Topics lists every topic the engine publishes to.
func Topics() []string {
	return []string{TopicNewPendingOrder, TopicOrderCooked, TopicOrderStatusUpdated}
}

// OrderEvent is the payload of every topic: a snapshot of the order with the
// identifiers recipients are matched against.
type OrderEvent struct {
	OrderID      kernel.UUID  `json:"orderId"`
	CustomerID   kernel.UUID  `json:"customerId"`
	RestaurantID kernel.UUID  `json:"restaurantId"`
	OwnerID      kernel.UUID  `json:"ownerId"`
	DriverID     *kernel.UUID `json:"driverId,omitempty"`
	Status       order.Status `json:"status"`
	Total        kernel.Money `json:"total"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// NewOrderEvent snapshots o.
func NewOrderEvent(o *order.Order) OrderEvent {
	ev := OrderEvent{
		OrderID:      o.ID(),
		CustomerID:   o.CustomerID(),
		RestaurantID: o.RestaurantID(),
		OwnerID:      o.OwnerID(),
		Status:       o.Status(),
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt(),
	}
	if d := o.DriverID(); d != nil {
		id := *d
		ev.DriverID = &id
	}
	return ev
}

// ConcernedWith reports whether who is the customer, owner or driver of the
// order, judged by the relation that belongs to who's role.
func (e OrderEvent) ConcernedWith(who user.Identity) bool {
	switch who.Role {
	case user.Client:
		return who.Is(e.CustomerID)
	case user.Owner:
		return who.Is(e.OwnerID)
	case user.Delivery:
		return e.DriverID != nil && who.Is(*e.DriverID)
	case user.UnknownRole:
		return false
	}
	return false
}

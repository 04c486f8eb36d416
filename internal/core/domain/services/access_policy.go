package services

import (
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
)

// AccessPolicy decides which orders an identity may see and which status
// changes it may request. Every decision branches on the closed user.Role set.
//
// Visibility:
//   - Client: orders they placed
//   - Owner: orders of restaurants they own
//   - Delivery: orders they drive
//
// Edits require visibility. Clients never edit, owners may move an order to
// Cooking or Cooked, drivers to PickedUp or Delivered. Nothing leaves Delivered.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanView reports whether who may read o.
func (AccessPolicy) CanView(who user.Identity, o *order.Order) bool {
	if o == nil {
		return false
	}
	switch who.Role {
	case user.Client:
		return who.Is(o.CustomerID())
	case user.Owner:
		return who.Is(o.OwnerID())
	case user.Delivery:
		return o.DriverID() != nil && who.Is(*o.DriverID())
	case user.UnknownRole:
		return false
	}
	return false
}

// MayRequest reports whether role may ever ask for target, regardless of the
// order's current status.
func (AccessPolicy) MayRequest(role user.Role, target order.Status) bool {
	switch role {
	case user.Client:
		return false
	case user.Owner:
		return target == order.Cooking || target == order.Cooked
	case user.Delivery:
		return target == order.PickedUp || target == order.Delivered
	case user.UnknownRole:
		return false
	}
	return false
}

// CanTransition reports whether role may request a move from current to target.
func (p AccessPolicy) CanTransition(role user.Role, current, target order.Status) bool {
	if current.Validate() != nil || current.IsTerminal() {
		return false
	}
	return p.MayRequest(role, target)
}

// CanEdit reports whether who may move o to target.
func (p AccessPolicy) CanEdit(who user.Identity, o *order.Order, target order.Status) bool {
	return p.CanView(who, o) && p.CanTransition(who.Role, o.Status(), target)
}

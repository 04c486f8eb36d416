package order

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriverAlreadyAssigned is wrapped into a ConflictError by Take.
	ErrDriverAlreadyAssigned = errors.New("this order already has a driver")
)

// Order is one customer purchase against one restaurant. It is the aggregate
// root of the lifecycle engine.
//
// Invariants:
//   - exactly one customer and one restaurant, fixed at creation
//   - the total is the sum of the item line prices at creation and never recomputed
//   - the driver is absent until Take and immutable afterwards
//   - Delivered is terminal
//
// ownerID is copied from the restaurant when the order is placed. It lets the
// access policy and the notification filters decide Owner visibility without
// loading the restaurant.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	driverID     *kernel.UUID
	items        []Item
	total        kernel.Money
	status       Status
	createdAt    time.Time

	// version is the optimistic concurrency token maintained by the repository.
	version int

	isConstructed bool
}

// NewOrder places a Pending order. The total is derived from the items.
//
// Example:
//
//	item, _ := order.NewItem(dish.ID(), selected, calculator.ComputeLinePrice(dish, selected))
//	o, err := order.NewOrder(kernel.NewUUID(), customer.ID, r.ID(), r.OwnerID(), []order.Item{item}, clock.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParty("customer", &o.customerID, customerID),
		o.setParty("restaurant", &o.restaurantID, restaurantID),
		o.setParty("owner", &o.ownerID, ownerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage, keeping the persisted total.
func RestoreOrder(
	id, customerID, restaurantID, ownerID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	total kernel.Money,
	status Status,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParty("customer", &o.customerID, customerID),
		o.setParty("restaurant", &o.restaurantID, restaurantID),
		o.setParty("owner", &o.ownerID, ownerID),
		total.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		d := *driverID
		o.driverID = &d
	}

	o.items = append([]Item(nil), items...)
	o.total = total
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// DriverID returns the assigned driver, nil while unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Version() int {
	return o.version
}

// HasDriver reports whether a driver has taken the order.
func (o *Order) HasDriver() bool {
	return o.driverID != nil
}

// ChangeStatus moves the order to target. Authorization is checked by the
// caller; the aggregate only guards the terminal state.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.status.ValidateTransition(target); err != nil {
		return err
	}
	o.status = target
	return nil
}

// Take assigns driverID. A second assignment fails with a ConflictError, so the
// driver can never be replaced.
func (o *Order) Take(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return errs.NewConflictErrorWithCause("order already has a driver", ErrDriverAlreadyAssigned)
	}
	o.driverID = &driverID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParty(param string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	*dst = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.linePrice.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
		total = total.Add(item.linePrice)
	}
	o.items = append([]Item(nil), items...)
	o.total = total
	return nil
}

// Package ports defines the contracts between the order engine and the
// infrastructure it consumes: the record store, the notification bus, the
// identity provider and the thin I/O wrappers (mail, object storage).
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a freshly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and driver changes. The write only succeeds when
	// the stored version still equals aggregate.Version(); otherwise it fails
	// with errs.ConcurrencyError and nothing is written. Orders are never deleted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

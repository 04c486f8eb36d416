// Package commands contains the operations that change system state: the order
// lifecycle (create, edit status, take), accounts, the catalog and payments.
//
// Every handler follows the same shape: validate the guarded command, open a
// unit of work, load aggregates, apply domain rules, persist, commit and only
// then notify. Failures of an unexpected kind are wrapped into errs.InternalError
// so callers always receive a classified error.
package commands

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	CategoryQueriesFactory interface {
		CategoryQueries() ports.CategoryQueries
	}

	OwnershipQueriesFactory interface {
		RestaurantOwnershipQueries() ports.RestaurantOwnershipQueries
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	VerificationRepoFactory interface {
		VerificationRepository() ports.VerificationRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW serves the lifecycle engine: orders plus the catalog lookups
	// needed to price a new order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... apply domain rules
	//   err = uow.OrderRepository().Update(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		DishRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AccountUoW serves account management.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		VerificationRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// CatalogUoW serves restaurant and dish management.
	CatalogUoW interface {
		TxManager
		RestaurantRepoFactory
		DishRepoFactory
		CategoryQueriesFactory
		OwnershipQueriesFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// PaymentUoW serves payments and promotions.
	PaymentUoW interface {
		TxManager
		RestaurantRepoFactory
		OwnershipQueriesFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)

// OrderEventPublisher is the write side of the notification bus. Calls return
// immediately; delivery happens in the background.
type OrderEventPublisher interface {
	PendingOrder(o *order.Order)
	OrderCooked(o *order.Order)
	OrderStatusUpdated(o *order.Order)
}

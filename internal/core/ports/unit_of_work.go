package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	RestaurantRepository() RestaurantRepository
	DishRepository() DishRepository
	CategoryQueries() CategoryQueries
	RestaurantOwnershipQueries() RestaurantOwnershipQueries
	UserRepository() UserRepository
	VerificationRepository() VerificationRepository
	PaymentRepository() PaymentRepository
}

package postgres

import (
	"context"

	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/paymentrepo"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/adapters/out/postgres/userrepo"
	"eats/internal/core/ports"

	"gorm.io/gorm"
)

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork hands out repositories bound to its transaction once Begin
// was called, and to the plain connection before that.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn())
}

func (uow *GormUnitOfWork) DishRepository() ports.DishRepository {
	return restaurantrepo.NewGormDishRepository(uow.conn())
}

func (uow *GormUnitOfWork) CategoryQueries() ports.CategoryQueries {
	return restaurantrepo.NewGormCategoryQueries(uow.conn())
}

func (uow *GormUnitOfWork) RestaurantOwnershipQueries() ports.RestaurantOwnershipQueries {
	return restaurantrepo.NewGormOwnershipQueries(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) VerificationRepository() ports.VerificationRepository {
	return userrepo.NewGormVerificationRepository(uow.conn())
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

package commands_test

import (
	"context"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantRepository) ListPromotionEndedBy(
	ctx context.Context,
	now time.Time,
) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, now)
	rs, _ := args.Get(0).([]*restaurant.Restaurant)
	return rs, args.Error(1)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *restaurant.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *restaurant.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*restaurant.Dish)
	return d, args.Error(1)
}

type MockCategoryQueries struct{ mock.Mock }

func (m *MockCategoryQueries) GetOrCreate(ctx context.Context, rawName string) (*restaurant.Category, error) {
	args := m.Called(ctx, rawName)
	c, _ := args.Get(0).(*restaurant.Category)
	return c, args.Error(1)
}

type MockOwnershipQueries struct{ mock.Mock }

func (m *MockOwnershipQueries) GetOwned(
	ctx context.Context,
	ownerID, restaurantID kernel.UUID,
) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, ownerID, restaurantID)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockVerificationRepository struct{ mock.Mock }

func (m *MockVerificationRepository) Save(ctx context.Context, v user.Verification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVerificationRepository) GetByCode(ctx context.Context, code string) (user.Verification, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).(user.Verification)
	return v, args.Error(1)
}

func (m *MockVerificationRepository) DeleteByUser(ctx context.Context, userID kernel.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	return m.Called().Get(0).(ports.DishRepository)
}

func (m *MockUoW) CategoryQueries() ports.CategoryQueries {
	return m.Called().Get(0).(ports.CategoryQueries)
}

func (m *MockUoW) RestaurantOwnershipQueries() ports.RestaurantOwnershipQueries {
	return m.Called().Get(0).(ports.RestaurantOwnershipQueries)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) VerificationRepository() ports.VerificationRepository {
	return m.Called().Get(0).(ports.VerificationRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

// expectTx registers Begin and a Rollback that may or may not follow Commit.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Maybe()
}

type orderFactory struct{ uow *MockUoW }

func (f orderFactory) Create() commands.OrderUoW { return f.uow }

type accountFactory struct{ uow *MockUoW }

func (f accountFactory) Create() commands.AccountUoW { return f.uow }

type catalogFactory struct{ uow *MockUoW }

func (f catalogFactory) Create() commands.CatalogUoW { return f.uow }

type paymentFactory struct{ uow *MockUoW }

func (f paymentFactory) Create() commands.PaymentUoW { return f.uow }

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PendingOrder(o *order.Order) { m.Called(o) }

func (m *MockPublisher) OrderCooked(o *order.Order) { m.Called(o) }

func (m *MockPublisher) OrderStatusUpdated(o *order.Order) { m.Called(o) }

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) bool {
	return m.Called(hash, password).Bool(0)
}

type MockTokens struct{ mock.Mock }

func (m *MockTokens) Issue(identity user.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) Verify(token string) (user.Identity, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(user.Identity)
	return id, args.Error(1)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendVerification(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

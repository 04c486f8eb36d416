package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTakeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driver := identity(user.Delivery)
	o := restoreOrder(t, identity(user.Client), identity(user.Owner), nil, order.Cooked)

	orders := new(MockOrderRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("OrderStatusUpdated", o).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Maybe()

	cmd, err := commands.NewTakeOrderCommand(driver, o.ID())
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(orderFactory{uow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, o.DriverID())
	assert.True(t, o.DriverID().IsEqual(driver.ID))
	assert.Equal(t, order.Cooked, o.Status(), "taking an order does not change its status")
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_AlreadyTaken(t *testing.T) {
	ctx := t.Context()
	driver2 := identity(user.Delivery)
	o := restoreOrder(t, identity(user.Client), identity(user.Owner), &driver2.ID, order.Cooked)

	orders := new(MockOrderRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)
	uow.expectTx(ctx, false)
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, _ := commands.NewTakeOrderCommand(identity(user.Delivery), o.ID())
	h := commands.NewTakeOrderCommandHandler(orderFactory{uow}, publisher)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.True(t, o.DriverID().IsEqual(driver2.ID))
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "OrderStatusUpdated", mock.Anything)
}

func TestTakeOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.expectTx(ctx, false)
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	cmd, _ := commands.NewTakeOrderCommand(identity(user.Delivery), id)
	h := commands.NewTakeOrderCommandHandler(orderFactory{uow}, new(MockPublisher))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestTakeOrderCommandHandler_Handle_OnlyDrivers(t *testing.T) {
	cmd, _ := commands.NewTakeOrderCommand(identity(user.Client), kernel.NewUUID())
	h := commands.NewTakeOrderCommandHandler(orderFactory{new(MockUoW)}, new(MockPublisher))

	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrForbidden)
}

// versionedOrders is an in-memory store applying the same optimistic check as
// the SQL repository: an update only lands on the version it was read at.
type versionedOrders struct {
	mu       sync.Mutex
	versions map[kernel.UUID]int
	rows     map[kernel.UUID]orderRow
}

type orderRow struct {
	customer, owner user.Identity
	driverID        *kernel.UUID
	status          order.Status
}

func (s *versionedOrders) Add(context.Context, *order.Order) error { return nil }

func (s *versionedOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	row, ok := s.rows[id]
	version := s.versions[id]
	s.mu.Unlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	item, _ := order.NewItem(kernel.NewUUID(), nil, kernel.MustMoney("15"))
	return order.RestoreOrder(id, row.customer.ID, kernel.NewUUID(), row.owner.ID, row.driverID,
		[]order.Item{item}, kernel.MustMoney("15"), row.status, time.Now(), version)
}

func (s *versionedOrders) Update(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.versions[o.ID()] != o.Version() {
		return errs.NewConcurrencyError("order", o.ID(), o.Version())
	}
	row := s.rows[o.ID()]
	row.driverID = o.DriverID()
	row.status = o.Status()
	s.rows[o.ID()] = row
	s.versions[o.ID()]++
	return nil
}

type noTx struct{ orders ports.OrderRepository }

func (noTx) Begin(context.Context) error { return nil }

func (noTx) Commit(context.Context) error { return nil }

func (noTx) Rollback(context.Context) error { return nil }

func (u noTx) OrderRepository() ports.OrderRepository { return u.orders }

func (noTx) RestaurantRepository() ports.RestaurantRepository { return nil }

func (noTx) DishRepository() ports.DishRepository { return nil }

type noTxFactory struct{ uow noTx }

func (f noTxFactory) Create() commands.OrderUoW { return f.uow }

func TestTakeOrderCommandHandler_ConcurrentTakes(t *testing.T) {
	for range 50 {
		id := kernel.NewUUID()
		store := &versionedOrders{
			versions: map[kernel.UUID]int{id: 1},
			rows: map[kernel.UUID]orderRow{id: {
				customer: identity(user.Client),
				owner:    identity(user.Owner),
				status:   order.Cooked,
			}},
		}
		publisher := new(MockPublisher)
		publisher.On("OrderStatusUpdated", mock.Anything).Maybe()
		h := commands.NewTakeOrderCommandHandler(noTxFactory{noTx{store}}, publisher)

		drivers := []user.Identity{identity(user.Delivery), identity(user.Delivery)}
		results := make([]error, len(drivers))

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i, d := range drivers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cmd, _ := commands.NewTakeOrderCommand(d, id)
				<-start
				results[i] = h.Handle(context.Background(), cmd)
			}()
		}
		close(start)
		wg.Wait()

		succeeded := 0
		for _, err := range results {
			if err == nil {
				succeeded++
				continue
			}
			require.ErrorIs(t, err, errs.ErrConflict)
		}
		require.Equal(t, 1, succeeded)

		final, err := store.Get(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, final.DriverID())
	}
}

package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func editOrder(
	t *testing.T,
	actor user.Identity,
	o *order.Order,
	target order.Status,
	commit bool,
) (error, *MockOrderRepository, *MockPublisher) {
	t.Helper()
	ctx := t.Context()

	orders := new(MockOrderRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)
	uow.expectTx(ctx, commit)
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	if commit {
		orders.On("Update", ctx, o).Return(nil).Once()
	}
	publisher.On("OrderStatusUpdated", o).Maybe()
	publisher.On("OrderCooked", o).Maybe()

	cmd, err := commands.NewEditOrderCommand(actor, o.ID(), target)
	require.NoError(t, err)

	h := commands.NewEditOrderCommandHandler(orderFactory{uow}, publisher)
	return h.Handle(ctx, cmd), orders, publisher
}

func TestEditOrderCommandHandler_OwnerCooks(t *testing.T) {
	customer, owner := identity(user.Client), identity(user.Owner)
	o := restoreOrder(t, customer, owner, nil, order.Pending)

	err, orders, publisher := editOrder(t, owner, o, order.Cooking, true)

	require.NoError(t, err)
	assert.Equal(t, order.Cooking, o.Status())
	orders.AssertExpectations(t)
	publisher.AssertCalled(t, "OrderStatusUpdated", o)
	publisher.AssertNotCalled(t, "OrderCooked", mock.Anything)

	err, _, publisher = editOrder(t, owner, o, order.Cooked, true)

	require.NoError(t, err)
	assert.Equal(t, order.Cooked, o.Status())
	publisher.AssertCalled(t, "OrderStatusUpdated", o)
	publisher.AssertCalled(t, "OrderCooked", o)
}

func TestEditOrderCommandHandler_ClientIsForbidden(t *testing.T) {
	customer, owner := identity(user.Client), identity(user.Owner)

	for _, target := range order.Statuses() {
		o := restoreOrder(t, customer, owner, nil, order.Cooking)

		err, orders, publisher := editOrder(t, customer, o, target, false)

		require.ErrorIs(t, err, errs.ErrForbidden, target.String())
		assert.Equal(t, order.Cooking, o.Status())
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "OrderStatusUpdated", mock.Anything)
	}
}

func TestEditOrderCommandHandler_OwnerCannotDeliver(t *testing.T) {
	customer, owner := identity(user.Client), identity(user.Owner)
	o := restoreOrder(t, customer, owner, nil, order.Cooked)

	err, _, _ := editOrder(t, owner, o, order.PickedUp, false)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestEditOrderCommandHandler_StrangerCannotSee(t *testing.T) {
	customer, owner := identity(user.Client), identity(user.Owner)
	o := restoreOrder(t, customer, owner, nil, order.Pending)

	err, _, _ := editOrder(t, identity(user.Owner), o, order.Cooking, false)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestEditOrderCommandHandler_DriverDelivers(t *testing.T) {
	customer, owner, driver := identity(user.Client), identity(user.Owner), identity(user.Delivery)
	o := restoreOrder(t, customer, owner, &driver.ID, order.PickedUp)

	err, _, publisher := editOrder(t, driver, o, order.Delivered, true)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	publisher.AssertCalled(t, "OrderStatusUpdated", o)
	publisher.AssertNotCalled(t, "OrderCooked", mock.Anything)
}

func TestEditOrderCommandHandler_DeliveredIsFinal(t *testing.T) {
	customer, owner, driver := identity(user.Client), identity(user.Owner), identity(user.Delivery)
	o := restoreOrder(t, customer, owner, &driver.ID, order.Delivered)

	err, _, publisher := editOrder(t, driver, o, order.PickedUp, false)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.NotErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.Delivered, o.Status())
	publisher.AssertNotCalled(t, "OrderStatusUpdated", mock.Anything)
}

func TestEditOrderCommandHandler_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.expectTx(ctx, false)
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	cmd, _ := commands.NewEditOrderCommand(identity(user.Owner), id, order.Cooking)
	h := commands.NewEditOrderCommandHandler(orderFactory{uow}, new(MockPublisher))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestEditOrderCommandHandler_LostUpdateIsConflict(t *testing.T) {
	ctx := t.Context()
	customer, owner := identity(user.Client), identity(user.Owner)
	o := restoreOrder(t, customer, owner, nil, order.Pending)

	orders := new(MockOrderRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)
	uow.expectTx(ctx, false)
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(errs.NewConcurrencyError("order", o.ID(), o.Version())).Once()

	cmd, _ := commands.NewEditOrderCommand(owner, o.ID(), order.Cooking)
	h := commands.NewEditOrderCommandHandler(orderFactory{uow}, publisher)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	publisher.AssertNotCalled(t, "OrderStatusUpdated", mock.Anything)
}

func TestNewEditOrderCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewEditOrderCommand(identity(user.Owner), kernel.NewUUID(), order.Unknown)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

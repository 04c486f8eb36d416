package order_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), nil, kernel.MustMoney(price))
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{newItem(t, "15")}, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create a pending order with the summed total", func(t *testing.T) {
		items := []order.Item{newItem(t, "15"), newItem(t, "4.50")}

		o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, ownerID, items, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.Total().IsEqual(kernel.MustMoney("19.50")))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.True(t, o.OwnerID().IsEqual(ownerID))
		assert.Nil(t, o.DriverID())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Zero(t, o.Version())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, ownerID, nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: items")
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var missing kernel.UUID

		o, err := order.NewOrder(missing, missing, restaurantID, missing, nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "owner")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value", func(t *testing.T) {
		var nilOrder *order.Order
		var zero order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
		assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the canonical flow", func(t *testing.T) {
		o := newOrder(t)

		for _, next := range []order.Status{order.Cooking, order.Cooked, order.PickedUp, order.Delivered} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("should refuse changes once delivered", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.ChangeStatus(order.Cooking)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Take(t *testing.T) {
	t.Run("should assign the driver without touching the status", func(t *testing.T) {
		o := newOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.Take(driverID))

		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
		assert.True(t, o.HasDriver())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should never replace an assigned driver", func(t *testing.T) {
		o := newOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Take(first))

		err := o.Take(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, order.ErrDriverAlreadyAssigned)
		assert.True(t, o.DriverID().IsEqual(first))
	})

	t.Run("should reject a zero driver id", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.Take(kernel.UUID{}))
		assert.Nil(t, o.DriverID())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the persisted total and version", func(t *testing.T) {
		driverID := kernel.NewUUID()
		items := []order.Item{newItem(t, "10")}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&driverID, items, kernel.MustMoney("12"), order.PickedUp, time.Now(), 4,
		)

		require.NoError(t, err)
		assert.True(t, o.Total().IsEqual(kernel.MustMoney("12")))
		assert.Equal(t, order.PickedUp, o.Status())
		assert.Equal(t, 4, o.Version())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, kernel.MustMoney("1"), order.Unknown, time.Now(), 1,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

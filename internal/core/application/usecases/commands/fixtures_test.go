package commands_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func identity(role user.Role) user.Identity {
	return user.Identity{ID: kernel.NewUUID(), Role: role}
}

func strPtr(s string) *string {
	return &s
}

func newRestaurant(t *testing.T, owner user.Identity) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), owner.ID, nil, "Burger Palace", "1 Main St", "")
	require.NoError(t, err)
	return r
}

// newBurger returns a dish with base price 10, a Size choice group with L (+4)
// and a Pickle flat modifier (+1).
func newBurger(t *testing.T, restaurantID kernel.UUID) *restaurant.Dish {
	t.Helper()
	large, err := restaurant.NewChoice("L", kernel.MustMoney("4"))
	require.NoError(t, err)
	size, err := restaurant.NewChoiceOption("Size", []restaurant.Choice{large})
	require.NoError(t, err)
	pickle, err := restaurant.NewFlatOption("Pickle", kernel.MustMoney("1"))
	require.NoError(t, err)

	d, err := restaurant.NewDish(kernel.NewUUID(), restaurantID, "Cheeseburger", "Double patty", "",
		kernel.MustMoney("10"), []restaurant.Option{size, pickle})
	require.NoError(t, err)
	return d
}

func restoreOrder(
	t *testing.T,
	customer, owner user.Identity,
	driverID *kernel.UUID,
	status order.Status,
) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), nil, kernel.MustMoney("15"))
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), customer.ID, kernel.NewUUID(), owner.ID, driverID,
		[]order.Item{item}, kernel.MustMoney("15"), status, time.Now(), 1)
	require.NoError(t, err)
	return o
}

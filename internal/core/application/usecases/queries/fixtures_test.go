package queries_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/pgtest"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// base is a fixed point in time; fixtures are spaced whole hours apart so
// stored timestamps sort the same way on every driver.
var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type world struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB
}

func newWorld(t *testing.T) *world {
	t.Helper()
	return &world{t: t, ctx: context.Background(), db: pgtest.NewSQLite(t)}
}

func identity(role user.Role) user.Identity {
	return user.Identity{ID: kernel.NewUUID(), Role: role}
}

func strPtr(s string) *string {
	return &s
}

func (w *world) restaurant(owner user.Identity, name string, categoryID *kernel.UUID, promotedUntil *time.Time) *restaurant.Restaurant {
	w.t.Helper()
	r, err := restaurant.RestoreRestaurant(kernel.NewUUID(), owner.ID, categoryID, name, "1 Main St", "", promotedUntil)
	require.NoError(w.t, err)
	require.NoError(w.t, restaurantrepo.NewGormRestaurantRepository(w.db).Add(w.ctx, r))
	return r
}

func (w *world) category(name string) *restaurant.Category {
	w.t.Helper()
	c, err := restaurantrepo.NewGormCategoryQueries(w.db).GetOrCreate(w.ctx, name)
	require.NoError(w.t, err)
	return c
}

// burger adds a dish with a Size choice group (L +4) and a Pickle flat modifier (+1).
func (w *world) burger(restaurantID kernel.UUID, name string) *restaurant.Dish {
	w.t.Helper()
	large, err := restaurant.NewChoice("L", kernel.MustMoney("4"))
	require.NoError(w.t, err)
	size, err := restaurant.NewChoiceOption("Size", []restaurant.Choice{large})
	require.NoError(w.t, err)
	pickle, err := restaurant.NewFlatOption("Pickle", kernel.MustMoney("1"))
	require.NoError(w.t, err)

	d, err := restaurant.NewDish(kernel.NewUUID(), restaurantID, name, "Double patty", "",
		kernel.MustMoney("10"), []restaurant.Option{size, pickle})
	require.NoError(w.t, err)
	require.NoError(w.t, restaurantrepo.NewGormDishRepository(w.db).Add(w.ctx, d))
	return d
}

// order stores a one-item order for a large burger with pickles (15).
func (w *world) order(
	customer user.Identity,
	r *restaurant.Restaurant,
	driverID *kernel.UUID,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	w.t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), []order.ItemOption{
		{Name: "Size", Choice: strPtr("L")},
		{Name: "Pickle"},
	}, kernel.MustMoney("15"))
	require.NoError(w.t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), customer.ID, r.ID(), r.OwnerID(), driverID,
		[]order.Item{item}, kernel.MustMoney("15"), status, createdAt, 1)
	require.NoError(w.t, err)
	require.NoError(w.t, orderrepo.NewGormOrderRepository(w.db).Add(w.ctx, o))
	return o
}

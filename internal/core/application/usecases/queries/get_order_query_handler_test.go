package queries_test

import (
	"testing"

	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGetOrderHandler(w *world) queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(w.db, orderrepo.NewGormOrderRepository(w.db))
}

func TestGetOrderQueryHandler_Parties(t *testing.T) {
	w := newWorld(t)
	alice := identity(user.Client)
	owner := identity(user.Owner)
	driver := identity(user.Delivery)
	palace := w.restaurant(owner, "Burger Palace", nil, nil)
	placed := w.order(alice, palace, &driver.ID, order.PickedUp, base)

	handler := newGetOrderHandler(w)

	tests := []struct {
		name    string
		viewer  user.Identity
		wantErr error
	}{
		{"customer", alice, nil},
		{"owner", owner, nil},
		{"assigned driver", driver, nil},
		{"other customer", identity(user.Client), errs.ErrForbidden},
		{"other owner", identity(user.Owner), errs.ErrForbidden},
		{"other driver", identity(user.Delivery), errs.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewGetOrderQuery(tt.viewer, placed.ID())
			require.NoError(t, err)

			view, err := handler.Handle(t.Context(), query)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "forbidden: you can't see that", errs.PublicMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, placed.ID(), view.ID)
			assert.Equal(t, "Burger Palace", view.Restaurant.Name)
			assert.Equal(t, "1 Main St", view.Restaurant.Address)
			assert.Equal(t, order.PickedUp, view.Status)
			require.Len(t, view.Items, 1)
			assert.Len(t, view.Items[0].Options, 2)
		})
	}
}

func TestGetOrderQueryHandler_NotFound(t *testing.T) {
	w := newWorld(t)

	query, err := queries.NewGetOrderQuery(identity(user.Client), kernel.NewUUID())
	require.NoError(t, err)

	_, err = newGetOrderHandler(w).Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_RestaurantRemoved(t *testing.T) {
	w := newWorld(t)
	alice := identity(user.Client)
	palace := w.restaurant(identity(user.Owner), "Burger Palace", nil, nil)
	placed := w.order(alice, palace, nil, order.Delivered, base)
	require.NoError(t, restaurantrepo.NewGormRestaurantRepository(w.db).Delete(t.Context(), palace.ID()))

	query, err := queries.NewGetOrderQuery(alice, placed.ID())
	require.NoError(t, err)

	view, err := newGetOrderHandler(w).Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, palace.ID(), view.Restaurant.ID)
	assert.Empty(t, view.Restaurant.Name)
	assert.Equal(t, "15.00", view.Total.String())
}

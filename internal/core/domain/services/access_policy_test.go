package services_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parties struct {
	customer user.Identity
	owner    user.Identity
	driver   user.Identity
}

func newParties() parties {
	return parties{
		customer: user.Identity{ID: kernel.NewUUID(), Role: user.Client},
		owner:    user.Identity{ID: kernel.NewUUID(), Role: user.Owner},
		driver:   user.Identity{ID: kernel.NewUUID(), Role: user.Delivery},
	}
}

func placedOrder(t *testing.T, p parties, status order.Status, withDriver bool) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), nil, kernel.MustMoney("10"))
	require.NoError(t, err)

	var driverID *kernel.UUID
	if withDriver {
		driverID = &p.driver.ID
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), p.customer.ID, kernel.NewUUID(), p.owner.ID,
		driverID, []order.Item{item}, kernel.MustMoney("10"), status, time.Now(), 1)
	require.NoError(t, err)
	return o
}

func TestAccessPolicy_CanView(t *testing.T) {
	policy := services.NewAccessPolicy()
	p := newParties()
	o := placedOrder(t, p, order.Cooked, true)

	t.Run("parties of the order", func(t *testing.T) {
		assert.True(t, policy.CanView(p.customer, o))
		assert.True(t, policy.CanView(p.owner, o))
		assert.True(t, policy.CanView(p.driver, o))
	})

	t.Run("strangers of every role", func(t *testing.T) {
		for _, role := range user.Roles() {
			assert.False(t, policy.CanView(user.Identity{ID: kernel.NewUUID(), Role: role}, o), role.String())
		}
	})

	t.Run("identity must match the relation of its own role", func(t *testing.T) {
		assert.False(t, policy.CanView(user.Identity{ID: p.customer.ID, Role: user.Owner}, o))
		assert.False(t, policy.CanView(user.Identity{ID: p.owner.ID, Role: user.Client}, o))
		assert.False(t, policy.CanView(user.Identity{ID: p.customer.ID, Role: user.UnknownRole}, o))
	})

	t.Run("no driver sees an untaken order", func(t *testing.T) {
		untaken := placedOrder(t, p, order.Cooked, false)

		assert.False(t, policy.CanView(p.driver, untaken))
	})

	t.Run("nil order", func(t *testing.T) {
		assert.False(t, policy.CanView(p.customer, nil))
	})
}

func TestAccessPolicy_CanTransition(t *testing.T) {
	policy := services.NewAccessPolicy()
	allowed := map[user.Role][]order.Status{
		user.Owner:    {order.Cooking, order.Cooked},
		user.Delivery: {order.PickedUp, order.Delivered},
	}
	isAllowed := func(role user.Role, target order.Status) bool {
		for _, s := range allowed[role] {
			if s == target {
				return true
			}
		}
		return false
	}

	for _, role := range append(user.Roles(), user.UnknownRole) {
		for _, current := range order.Statuses() {
			for _, target := range order.Statuses() {
				expected := !current.IsTerminal() && isAllowed(role, target)

				assert.Equal(t, expected, policy.CanTransition(role, current, target),
					"%s: %s -> %s", role, current, target)
			}
		}
	}
}

func TestAccessPolicy_CanEdit(t *testing.T) {
	policy := services.NewAccessPolicy()
	p := newParties()

	t.Run("owner cooks their order", func(t *testing.T) {
		o := placedOrder(t, p, order.Pending, false)

		assert.True(t, policy.CanEdit(p.owner, o, order.Cooking))
		assert.False(t, policy.CanEdit(p.owner, o, order.PickedUp))
	})

	t.Run("client can never edit", func(t *testing.T) {
		o := placedOrder(t, p, order.Pending, false)

		for _, target := range order.Statuses() {
			assert.False(t, policy.CanEdit(p.customer, o, target))
		}
	})

	t.Run("edit requires visibility", func(t *testing.T) {
		o := placedOrder(t, p, order.Cooked, false)
		otherOwner := user.Identity{ID: kernel.NewUUID(), Role: user.Owner}

		assert.False(t, policy.CanEdit(otherOwner, o, order.Cooked))
		assert.False(t, policy.CanEdit(p.driver, o, order.PickedUp), "driver must take the order first")
	})

	t.Run("assigned driver delivers", func(t *testing.T) {
		o := placedOrder(t, p, order.Cooked, true)

		assert.True(t, policy.CanEdit(p.driver, o, order.PickedUp))
		assert.True(t, policy.CanEdit(p.driver, o, order.Delivered))
	})

	t.Run("delivered orders are frozen", func(t *testing.T) {
		o := placedOrder(t, p, order.Delivered, true)

		assert.False(t, policy.CanEdit(p.driver, o, order.Delivered))
		assert.False(t, policy.CanEdit(p.owner, o, order.Cooked))
	})
}

func TestAccessPolicy_MayRequest(t *testing.T) {
	policy := services.NewAccessPolicy()

	granted := 0
	for _, role := range user.Roles() {
		for _, target := range order.Statuses() {
			if policy.MayRequest(role, target) {
				granted++
			}
		}
	}

	assert.Equal(t, 4, granted)
	assert.True(t, policy.MayRequest(user.Owner, order.Cooked))
	assert.True(t, policy.MayRequest(user.Delivery, order.Delivered))
	assert.False(t, policy.MayRequest(user.Owner, order.Pending))
	assert.False(t, policy.MayRequest(user.Client, order.Pending))
}

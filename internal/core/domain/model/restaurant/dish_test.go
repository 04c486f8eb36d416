package restaurant_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChoiceOption(t *testing.T) {
	small, _ := restaurant.NewChoice("S", kernel.ZeroMoney())
	large, _ := restaurant.NewChoice("L", kernel.MustMoney("4"))

	t.Run("finds choices by name", func(t *testing.T) {
		size, err := restaurant.NewChoiceOption("Size", []restaurant.Choice{small, large})
		require.NoError(t, err)

		choice, ok := size.FindChoice("L")

		assert.True(t, ok)
		assert.True(t, choice.Extra().IsEqual(kernel.MustMoney("4")))
		assert.Equal(t, restaurant.ChoiceGroup, size.Kind())
		assert.True(t, size.Extra().Decimal().IsZero())

		_, ok = size.FindChoice("XL")
		assert.False(t, ok)
	})

	t.Run("rejects duplicate choices", func(t *testing.T) {
		_, err := restaurant.NewChoiceOption("Size", []restaurant.Choice{large, large})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires at least one choice", func(t *testing.T) {
		_, err := restaurant.NewChoiceOption("Size", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewDish(t *testing.T) {
	pickle, _ := restaurant.NewFlatOption("Pickle", kernel.MustMoney("1"))
	restaurantID := kernel.NewUUID()

	t.Run("creates a dish with options", func(t *testing.T) {
		d, err := restaurant.NewDish(kernel.NewUUID(), restaurantID, "Cheeseburger", "Double patty",
			"", kernel.MustMoney("10"), []restaurant.Option{pickle})

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.RestaurantID().IsEqual(restaurantID))
		opt, ok := d.FindOption("Pickle")
		assert.True(t, ok)
		assert.Equal(t, restaurant.FlatModifier, opt.Kind())
	})

	t.Run("rejects duplicate option names", func(t *testing.T) {
		_, err := restaurant.NewDish(kernel.NewUUID(), restaurantID, "Cheeseburger", "Double patty",
			"", kernel.MustMoney("10"), []restaurant.Option{pickle, pickle})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero value options", func(t *testing.T) {
		_, err := restaurant.NewDish(kernel.NewUUID(), restaurantID, "Cheeseburger", "Double patty",
			"", kernel.MustMoney("10"), []restaurant.Option{{}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires a price", func(t *testing.T) {
		_, err := restaurant.NewDish(kernel.NewUUID(), restaurantID, "Cheeseburger", "Double patty",
			"", kernel.Money{}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("edits keep untouched fields", func(t *testing.T) {
		d, _ := restaurant.NewDish(kernel.NewUUID(), restaurantID, "Cheeseburger", "Double patty",
			"", kernel.MustMoney("10"), []restaurant.Option{pickle})
		price := kernel.MustMoney("11")

		require.NoError(t, d.Edit(nil, nil, nil, &price, nil))

		assert.Equal(t, "Cheeseburger", d.Name())
		assert.True(t, d.Price().IsEqual(price))
		assert.Len(t, d.Options(), 1)
	})
}

package payment_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	now := time.Now().UTC()
	ownerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	t.Run("records the transaction", func(t *testing.T) {
		p, err := payment.NewPayment(kernel.NewUUID(), "tx-123", ownerID, restaurantID, now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "tx-123", p.TransactionID())
		assert.True(t, p.OwnerID().IsEqual(ownerID))
		assert.True(t, p.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, now, p.CreatedAt())
	})

	t.Run("requires a transaction id", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), "", ownerID, restaurantID, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var p *payment.Payment

		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})
}

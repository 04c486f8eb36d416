package user_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("round trips every role", func(t *testing.T) {
		for _, role := range user.Roles() {
			parsed, err := user.ParseRole(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := user.ParseRole("Admin")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown role does not validate", func(t *testing.T) {
		require.Error(t, user.UnknownRole.Validate())
		assert.Equal(t, "Unknown", user.Role(42).String())
	})
}

func TestNewUser(t *testing.T) {
	t.Run("normalises the email", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "  Ana@Example.COM ", "hash", user.Client)

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email())
		assert.False(t, u.Verified())
		assert.Equal(t, user.Client, u.Identity().Role)
	})

	t.Run("joins validation errors", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "not-an-email", "", user.UnknownRole)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestUser_ChangeEmail(t *testing.T) {
	u, err := user.RestoreUser(kernel.NewUUID(), "ana@example.com", "hash", user.Owner, true)
	require.NoError(t, err)

	require.NoError(t, u.ChangeEmail("ana.b@example.com"))

	assert.Equal(t, "ana.b@example.com", u.Email())
	assert.False(t, u.Verified(), "a new address must be verified again")

	u.Verify()
	assert.True(t, u.Verified())
}

func TestNewVerification(t *testing.T) {
	userID := kernel.NewUUID()

	v1, err := user.NewVerification(userID)
	require.NoError(t, err)
	v2, _ := user.NewVerification(userID)

	assert.NotEmpty(t, v1.Code())
	assert.NotEqual(t, v1.Code(), v2.Code())
	assert.True(t, v1.UserID().IsEqual(userID))

	_, err = user.NewVerification(kernel.UUID{})
	require.Error(t, err)
}

func TestIdentity(t *testing.T) {
	id := kernel.NewUUID()

	identity, err := user.NewIdentity(id, user.Delivery)

	require.NoError(t, err)
	assert.True(t, identity.Is(id))
	assert.False(t, identity.Is(kernel.NewUUID()))

	_, err = user.NewIdentity(id, user.UnknownRole)
	require.Error(t, err)
}

package user

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
)

// Identity is the authenticated caller handed to every application handler.
// It carries no credentials; the transport resolves it from a session token.
type Identity struct {
	ID   kernel.UUID
	Role Role
}

// NewIdentity validates both fields.
func NewIdentity(id kernel.UUID, role Role) (Identity, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Identity{}, err
	}
	return Identity{ID: id, Role: role}, nil
}

// Validate reports whether the identity is usable for authorization decisions.
func (i Identity) Validate() error {
	return errors.Join(i.ID.Validate(), i.Role.Validate())
}

// Is reports whether the identity belongs to user id.
func (i Identity) Is(id kernel.UUID) bool {
	return i.ID.IsEqual(id)
}

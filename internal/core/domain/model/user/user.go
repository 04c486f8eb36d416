package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned for a User that bypassed NewUser/RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a platform account. The password is only ever held as a hash
// produced by the identity provider.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role
	verified     bool

	isConstructed bool
}

// NewUser registers a new, unverified account.
func NewUser(id kernel.UUID, email string, passwordHash string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds an account loaded from storage.
func RestoreUser(id kernel.UUID, email, passwordHash string, role Role, verified bool) (*User, error) {
	u, err := NewUser(id, email, passwordHash, role)
	if err != nil {
		return nil, err
	}
	u.verified = verified
	return u, nil
}

// Validate ensures the user was built by a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Email() string { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role { return u.role }
func (u *User) Verified() bool { return u.verified }
func (u *User) Identity() Identity { return Identity{ID: u.id, Role: u.role} }

// ChangeEmail replaces the address and drops the verified flag; the new address
// has to be confirmed again.
func (u *User) ChangeEmail(email string) error {
	if err := u.setEmail(email); err != nil {
		return err
	}
	u.verified = false
	return nil
}

// ChangePasswordHash stores a freshly hashed password.
func (u *User) ChangePasswordHash(hash string) error {
	return u.setPasswordHash(hash)
}

// Verify marks the e-mail address as confirmed.
func (u *User) Verify() {
	u.verified = true
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// NormalizeEmail is the form addresses are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an e-mail address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

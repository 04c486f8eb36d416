package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand registers a new user.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewCreateAccountCommand(userID kernel.UUID, email, password string, role user.Role) (CreateAccountCommand, error) {
	cmd := CreateAccountCommand{guard: guard.NewConstructorGuard()}

	var emailErr error
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if err := errors.Join(userID.Validate(), emailErr, validatePassword(password), role.Validate()); err != nil {
		return CreateAccountCommand{}, err
	}

	cmd.userID = userID
	cmd.email = email
	cmd.password = password
	cmd.role = role
	return cmd, nil
}

func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

func (c CreateAccountCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateAccountCommand) Email() string {
	return c.email
}

func (c CreateAccountCommand) Password() string {
	return c.password
}

func (c CreateAccountCommand) Role() user.Role {
	return c.role
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, "any")
	}
	return nil
}

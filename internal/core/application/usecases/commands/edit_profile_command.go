package commands

import (
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrEditProfileCommandIsNotConstructed = errors.New(
	"EditProfileCommand must be created via NewEditProfileCommand constructor",
)

// EditProfileCommand changes the caller's e-mail and/or password. Nil fields
// are left unchanged.
type EditProfileCommand struct { //nolint:recvcheck //using for validation
	actor    user.Identity
	email    *string
	password *string

	guard guard.ConstructorGuard
}

func NewEditProfileCommand(actor user.Identity, email, password *string) (EditProfileCommand, error) {
	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("user", err))
	}
	if email != nil && *email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if password != nil {
		errList = append(errList, validatePassword(*password))
	}
	if err := errors.Join(errList...); err != nil {
		return EditProfileCommand{}, err
	}

	return EditProfileCommand{
		actor:    actor,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EditProfileCommand) Validate() error {
	return c.guard.Validate(ErrEditProfileCommandIsNotConstructed)
}

func (c EditProfileCommand) Actor() user.Identity {
	return c.actor
}

func (c EditProfileCommand) Email() *string {
	return c.email
}

func (c EditProfileCommand) Password() *string {
	return c.password
}

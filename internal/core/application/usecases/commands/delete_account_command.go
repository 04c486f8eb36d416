package commands

import (
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrDeleteAccountCommandIsNotConstructed = errors.New(
	"DeleteAccountCommand must be created via NewDeleteAccountCommand constructor",
)

// DeleteAccountCommand removes the caller's account. Orders the user took part
// in are kept.
type DeleteAccountCommand struct { //nolint:recvcheck //using for validation
	actor user.Identity

	guard guard.ConstructorGuard
}

func NewDeleteAccountCommand(actor user.Identity) (DeleteAccountCommand, error) {
	if err := actor.Validate(); err != nil {
		return DeleteAccountCommand{}, errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	return DeleteAccountCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccountCommandIsNotConstructed)
}

func (c DeleteAccountCommand) Actor() user.Identity {
	return c.actor
}

package commands

import (
	"errors"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrVerifyEmailCommandIsNotConstructed = errors.New(
	"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
)

// VerifyEmailCommand confirms an address with the code that was mailed to it.
type VerifyEmailCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

func NewVerifyEmailCommand(code string) (VerifyEmailCommand, error) {
	if code == "" {
		return VerifyEmailCommand{}, errs.NewValueIsRequiredError("code")
	}
	return VerifyEmailCommand{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

func (c VerifyEmailCommand) Code() string {
	return c.code
}

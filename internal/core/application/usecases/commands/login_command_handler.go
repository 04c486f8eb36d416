package commands

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

var errWrongCredentials = errs.NewForbiddenError("wrong email or password")

// LoginCommandHandler checks credentials and issues a token. Unknown addresses
// and wrong passwords fail the same way.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, hasher: hasher, tokens: tokens}
}

// Handle returns the session token.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (token string, err error) {
	defer func() {
		err = errs.Internal("could not log in", err)
	}()

	if err = cmd.Validate(); err != nil {
		return "", err
	}

	u, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, user.NormalizeEmail(cmd.Email()))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", errWrongCredentials
	}
	if err != nil {
		return "", err
	}

	if !h.hasher.Compare(u.PasswordHash(), cmd.Password()) {
		return "", errWrongCredentials
	}

	return h.tokens.Issue(u.Identity())
}

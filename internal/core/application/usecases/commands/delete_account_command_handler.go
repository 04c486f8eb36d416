package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

type DeleteAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewDeleteAccountCommandHandler(uowFactory AccountUoWFactory) DeleteAccountCommandHandler {
	return DeleteAccountCommandHandler{uowFactory: uowFactory}
}

func (h DeleteAccountCommandHandler) Handle(ctx context.Context, cmd DeleteAccountCommand) (err error) {
	defer func() {
		err = errs.Internal("could not delete account", err)
	}()

	if err = cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id := cmd.Actor().ID
	if err = uow.VerificationRepository().DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err = uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

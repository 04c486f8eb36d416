package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

// VerifyEmailCommandHandler marks the owner of a code as verified and consumes
// the code.
type VerifyEmailCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewVerifyEmailCommandHandler(uowFactory AccountUoWFactory) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{uowFactory: uowFactory}
}

func (h VerifyEmailCommandHandler) Handle(ctx context.Context, cmd VerifyEmailCommand) (err error) {
	defer func() {
		err = errs.Internal("could not verify email", err)
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

	verifications := uow.VerificationRepository()
	v, err := verifications.GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	users := uow.UserRepository()
	u, err := users.Get(ctx, v.UserID())
	if err != nil {
		return err
	}

	u.Verify()
	if err = users.Update(ctx, u); err != nil {
		return err
	}
	if err = verifications.DeleteByUser(ctx, u.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

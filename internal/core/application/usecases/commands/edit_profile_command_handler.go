package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditProfileCommandHandler updates the caller's account. A new e-mail address
// drops the verified flag and mails a fresh verification code.
type EditProfileCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

func NewEditProfileCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) EditProfileCommandHandler {
	return EditProfileCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger.With("component", "edit_profile"),
	}
}

func (h EditProfileCommandHandler) Handle(ctx context.Context, cmd EditProfileCommand) (err error) {
	defer func() {
		err = errs.Internal("could not update profile", err)
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

	users := uow.UserRepository()
	u, err := users.Get(ctx, cmd.Actor().ID)
	if err != nil {
		return err
	}

	var verification *user.Verification
	if email := cmd.Email(); email != nil {
		if err = ensureEmailIsFree(ctx, users, *email, u); err != nil {
			return err
		}
		if err = u.ChangeEmail(*email); err != nil {
			return err
		}

		v, vErr := user.NewVerification(u.ID())
		if vErr != nil {
			return vErr
		}
		if err = uow.VerificationRepository().Save(ctx, v); err != nil {
			return err
		}
		verification = &v
	}

	if password := cmd.Password(); password != nil {
		hash, hashErr := h.hasher.Hash(*password)
		if hashErr != nil {
			return hashErr
		}
		if err = u.ChangePasswordHash(hash); err != nil {
			return err
		}
	}

	if err = users.Update(ctx, u); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if verification != nil {
		if mailErr := h.mailer.SendVerification(ctx, u.Email(), verification.Code()); mailErr != nil {
			h.logger.Error("failed to send verification mail", "email", u.Email(), "error", mailErr)
		}
	}
	return nil
}

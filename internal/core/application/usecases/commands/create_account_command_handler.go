package commands

import (
	"context"
	"errors"
	"log/slog"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// CreateAccountCommandHandler registers a user and mails a verification code.
// The address must not be in use. Mail failures are logged; the account stays.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

func NewCreateAccountCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger.With("component", "create_account"),
	}
}

func (h CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) (err error) {
	defer func() {
		err = errs.Internal("could not create account", err)
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
	if err = ensureEmailIsFree(ctx, users, cmd.Email(), nil); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Email(), hash, cmd.Role())
	if err != nil {
		return err
	}
	if err = users.Add(ctx, u); err != nil {
		return err
	}

	verification, err := user.NewVerification(u.ID())
	if err != nil {
		return err
	}
	if err = uow.VerificationRepository().Save(ctx, verification); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sendVerification(ctx, u.Email(), verification.Code())
	return nil
}

func (h CreateAccountCommandHandler) sendVerification(ctx context.Context, email, code string) {
	if err := h.mailer.SendVerification(ctx, email, code); err != nil {
		h.logger.Error("failed to send verification mail", "email", email, "error", err)
	}
}

// ensureEmailIsFree fails with a ConflictError when another account uses email.
// self, when set, is the account allowed to hold it.
func ensureEmailIsFree(ctx context.Context, users ports.UserRepository, email string, self *user.User) error {
	existing, err := users.GetByEmail(ctx, user.NormalizeEmail(email))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if self != nil && existing.ID().IsEqual(self.ID()) {
		return nil
	}
	return errs.NewConflictError("there is a user with that email already")
}

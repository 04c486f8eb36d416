package commands

import (
	"errors"

	"eats/internal/pkg/guard"
)

var ErrExpirePromotionsCommandIsNotConstructed = errors.New(
	"ExpirePromotionsCommand must be created via NewExpirePromotionsCommand constructor",
)

// ExpirePromotionsCommand clears every promotion that has run out.
type ExpirePromotionsCommand struct {
	guard guard.ConstructorGuard
}

func NewExpirePromotionsCommand() ExpirePromotionsCommand {
	return ExpirePromotionsCommand{guard: guard.NewConstructorGuard()}
}

func (c ExpirePromotionsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePromotionsCommandIsNotConstructed)
}

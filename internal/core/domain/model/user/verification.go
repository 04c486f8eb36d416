package user

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/lucsky/cuid"
)

// Verification is the one-time code mailed to a user to confirm their address.
type Verification struct {
	code   string
	userID kernel.UUID
}

// NewVerification issues a fresh collision-resistant code for userID.
func NewVerification(userID kernel.UUID) (Verification, error) {
	if err := userID.Validate(); err != nil {
		return Verification{}, err
	}
	return Verification{code: cuid.New(), userID: userID}, nil
}

// RestoreVerification rebuilds a stored code.
func RestoreVerification(code string, userID kernel.UUID) (Verification, error) {
	if code == "" {
		return Verification{}, errs.NewValueIsRequiredError("code")
	}
	if err := userID.Validate(); err != nil {
		return Verification{}, err
	}
	return Verification{code: code, userID: userID}, nil
}

func (v Verification) Code() string { return v.code }
func (v Verification) UserID() kernel.UUID { return v.userID }

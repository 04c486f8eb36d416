package user

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Role is the actor kind of an authenticated user.
type Role int

const (
	// UnknownRole catches uninitialised values.
	UnknownRole Role = iota
	// Client places orders and sees only their own orders.
	Client
	// Owner runs restaurants and cooks their orders.
	Owner
	// Delivery takes cooked orders and delivers them.
	Delivery
)

func roleNames() map[Role]string {
	return map[Role]string{
		Client:   "Client",
		Owner:    "Owner",
		Delivery: "Delivery",
	}
}

// Roles lists every valid role in declaration order.
func Roles() []Role {
	return []Role{Client, Owner, Delivery}
}

// ParseRole maps the wire name ("Client", "Owner", "Delivery") to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleNames()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames()[r]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(data []byte) error {
	parsed, err := ParseRole(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

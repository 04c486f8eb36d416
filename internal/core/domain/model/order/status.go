package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// Canonical flow:
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//	   (owner)      (owner)     (driver)      (driver)
//
// The order itself does not enforce adjacency: which targets an actor may
// request is decided by services.AccessPolicy. The only rule owned by Status is
// that Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Cooking means the restaurant accepted the order and is preparing it.
	Cooking

	// Cooked means the food is ready; drivers are alerted at this point.
	Cooked

	// PickedUp means the driver has collected the order.
	PickedUp

	// Delivered is the final state. No transition leaves it.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Cooking, Cooked, PickedUp, Delivered}
}

// ParseStatus maps a wire name such as "PickedUp" to its Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateTransition checks that the order may move from s to target.
// Role-specific rules live in services.AccessPolicy.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewConflictError(fmt.Sprintf("order is %s, no further status changes are allowed", s))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

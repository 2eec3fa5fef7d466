package order

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions move strictly forward:
//
//	Accepted ──> OnTheWay ──> Arrived ──> Delivered
//
// Skipping ahead is allowed (a package scanned late may jump from Accepted
// to Arrived); moving backward or re-applying the current status is not.
// Statuses are persisted and exchanged as the literal strings below.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Accepted is the initial status when an order enters the system.
	Accepted

	// OnTheWay indicates the package has left the origin warehouse.
	OnTheWay

	// Arrived indicates the package has reached the destination office.
	Arrived

	// Delivered indicates the package was handed to the cabinet holder.
	// This is the terminal state.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Accepted:      "Accepted",
		OnTheWay:      "OnTheWay",
		Arrived:       "Arrived",
		Delivered:     "Delivered",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as invalid
	return map[Status]string{
		Accepted:  "Accepted",
		OnTheWay:  "OnTheWay",
		Arrived:   "Arrived",
		Delivered: "Delivered",
	}
}

// AllStatusNames returns the persisted literals of the four valid statuses,
// in lifecycle order. The transport layer serves this list to clients.
func AllStatusNames() []string {
	return []string{
		Accepted.String(),
		OnTheWay.String(),
		Arrived.String(),
		Delivered.String(),
	}
}

// StatusFromString parses a persisted status literal.
// Unknown literals fail with a ValueIsInvalid error.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the persisted literal of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects any value outside the four defined statuses.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// TransitionTo validates a forward move and returns the next status.
// Both statuses must be valid, and next must be strictly later in the
// lifecycle than the current status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, err
	}
	if err := next.Validate(); err != nil {
		return UnknownStatus, err
	}
	if next <= s {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot move from %s to %s", s.String(), next.String()))
	}
	return next, nil
}

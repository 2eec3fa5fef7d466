package account

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Role distinguishes regular cabinet holders from administrators.
// Roles are persisted and exchanged as the literal strings "user" and "admin".
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// RoleUser is the default role for registered cabinet holders.
	RoleUser

	// RoleAdmin grants access to order management and reference data.
	RoleAdmin
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUser:  "user",
		RoleAdmin: "admin",
	}
}

// RoleFromString parses a persisted role literal.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the persisted literal for the role, or "unknown".
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects any value outside the defined roles.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
)

// adminProfilePlaceholder fills the profile fields that admin registration
// does not collect.
const adminProfilePlaceholder = "Admin Default"

// RegisterAccountCommand represents a request to register a new account.
// Registration assigns a fresh cabinet code and starts the balance at zero.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	email       string
	password    string
	firstName   string
	lastName    string
	phoneNumber string
	address     string
	role        account.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a registration command for a regular
// cabinet holder.
func NewRegisterAccountCommand(
	email, password, firstName, lastName, phoneNumber, address string,
) (RegisterAccountCommand, error) {
	return newRegisterCommand(email, password, firstName, lastName, phoneNumber, address, account.RoleUser)
}

// NewRegisterAdminCommand creates a registration command for an
// administrator. Admin registration collects only credentials; the profile
// fields are filled with placeholders.
func NewRegisterAdminCommand(email, password string) (RegisterAccountCommand, error) {
	return newRegisterCommand(
		email, password,
		adminProfilePlaceholder, adminProfilePlaceholder,
		"000-000-0000", adminProfilePlaceholder,
		account.RoleAdmin,
	)
}

func newRegisterCommand(
	email, password, firstName, lastName, phoneNumber, address string,
	role account.Role,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		firstName:   firstName,
		lastName:    lastName,
		phoneNumber: phoneNumber,
		address:     address,
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// Email returns the registration email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// FirstName returns the holder's first name.
func (c RegisterAccountCommand) FirstName() string {
	return c.firstName
}

// LastName returns the holder's last name.
func (c RegisterAccountCommand) LastName() string {
	return c.lastName
}

// PhoneNumber returns the contact phone number.
func (c RegisterAccountCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the holder's address.
func (c RegisterAccountCommand) Address() string {
	return c.address
}

// Role returns the role the account registers with.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

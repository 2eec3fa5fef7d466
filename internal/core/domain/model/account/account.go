package account

import (
	"errors"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account was not created
	// through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

	// ErrInsufficientBalance is returned by Withdraw when the balance does not
	// cover the requested amount. It is a business-rule rejection, not a fault.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Account is the aggregate root for a registered user. It owns the cabinet
// code that orders reference and the prepaid balance that settlement debits.
type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string
	firstName    string
	lastName     string
	phoneNumber  string
	address      string
	role         Role
	cabinetID    kernel.CabinetID
	balance      kernel.Money
	createdAt    time.Time

	isConstructed bool
}

// NewAccount creates an account at registration time with a zero balance.
// The cabinet code is assigned here and never changes afterwards.
func NewAccount(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	phoneNumber string,
	address string,
	role Role,
	cabinetID kernel.CabinetID,
	now time.Time,
) (*Account, error) {
	a := &Account{
		balance:       kernel.ZeroMoney(),
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
		a.setCabinetID(cabinetID),
	); err != nil {
		return nil, err
	}

	a.firstName = firstName
	a.lastName = lastName
	a.phoneNumber = phoneNumber
	a.address = address
	return a, nil
}

// RestoreAccount reconstructs an account from persistence, including its
// current balance.
func RestoreAccount(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	phoneNumber string,
	address string,
	role Role,
	cabinetID kernel.CabinetID,
	balance kernel.Money,
	createdAt time.Time,
) (*Account, error) {
	a, err := NewAccount(id, email, passwordHash, firstName, lastName, phoneNumber, address, role, cabinetID, createdAt)
	if err != nil {
		return nil, err
	}

	a.balance = balance
	return a, nil
}

// Validate ensures the account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Email returns the registration email.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored credential hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// FirstName returns the holder's first name.
func (a *Account) FirstName() string {
	return a.firstName
}

// LastName returns the holder's last name.
func (a *Account) LastName() string {
	return a.lastName
}

// PhoneNumber returns the contact phone number.
func (a *Account) PhoneNumber() string {
	return a.phoneNumber
}

// Address returns the holder's address.
func (a *Account) Address() string {
	return a.address
}

// Role returns the account role.
func (a *Account) Role() Role {
	return a.role
}

// IsAdmin reports whether the account has administrator privileges.
func (a *Account) IsAdmin() bool {
	return a.role == RoleAdmin
}

// CabinetID returns the cabinet code assigned at registration.
func (a *Account) CabinetID() kernel.CabinetID {
	return a.cabinetID
}

// Balance returns the current prepaid balance.
func (a *Account) Balance() kernel.Money {
	return a.balance
}

// CreatedAt returns the registration timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// Deposit credits the balance. Only strictly positive amounts are accepted;
// there is no upper bound.
func (a *Account) Deposit(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("deposit amount must be positive")
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits the balance. The settlement use case is the only caller;
// it fails with ErrInsufficientBalance when the balance does not cover the
// amount, leaving the balance untouched.
func (a *Account) Withdraw(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("withdrawal amount must be positive")
	}
	if !a.balance.GreaterOrEqual(amount) {
		return ErrInsufficientBalance
	}

	remaining, err := a.balance.Sub(amount)
	if err != nil {
		return err
	}

	a.balance = remaining
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setCabinetID(cabinetID kernel.CabinetID) error {
	if err := cabinetID.Validate(); err != nil {
		return err
	}
	a.cabinetID = cabinetID
	return nil
}

// Package queries contains read-only operations in the CQRS split. Query
// handlers bypass the domain aggregates and read projections straight from
// the database.
package queries

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
)

// LoginQuery carries the credentials presented at login.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query. Both fields are required.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the presented email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the presented plaintext password.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginQueryResponse is the authenticated session handed back to the
// client: a signed token plus the profile fields the frontend renders.
type LoginQueryResponse struct {
	Token     string
	AccountID kernel.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
	CabinetID string
	Balance   string
}

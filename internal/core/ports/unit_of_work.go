package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary spanning multiple
// repositories. The settlement command depends on it: the balance debit and
// the paid flag must commit together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// AccountRepository returns an AccountRepository bound to the current
	// transaction.
	AccountRepository() AccountRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// CountryRepository returns a CountryRepository bound to the current
	// transaction.
	CountryRepository() CountryRepository

	// FlightRepository returns a FlightRepository bound to the current
	// transaction.
	FlightRepository() FlightRepository

	// ShopRepository returns a ShopRepository bound to the current
	// transaction.
	ShopRepository() ShopRepository
}

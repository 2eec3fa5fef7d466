// Package ports defines the persistence and collaborator contracts of the
// cargo core. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. Fails with a Conflict error when the email
	// or the cabinet code is already taken.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account, including its balance.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetForUpdate retrieves an account by id under a row lock, so that
	// concurrent settlements against the same balance serialize. Must be
	// called inside an active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its registration email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// GetByCabinetID retrieves the account owning a cabinet code.
	GetByCabinetID(ctx context.Context, cabinetID kernel.CabinetID) (*account.Account, error)

	// CabinetExists reports whether a cabinet code is already assigned.
	// The cabinet allocator uses it as its collision pre-check.
	CabinetExists(ctx context.Context, cabinetID kernel.CabinetID) (bool, error)
}

package ports

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing reads with reference-data joins live on the query side; this
// interface covers the write paths and the lookups they need.
type OrderRepository interface {
	// Add persists a new order. Fails with a Conflict error when the
	// tracking id already exists; the unique constraint on the tracking id
	// column is the authoritative defense, not the caller's pre-check.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by id under a row lock, so that
	// concurrent settlements of the same order serialize. Must be called
	// inside an active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingID retrieves an order by its tracking identifier.
	GetByTrackingID(ctx context.Context, trackingID string) (*order.Order, error)

	// GetAcceptedOnDepartedFlights retrieves Accepted orders whose assigned
	// flight departed before now. The flight departure job advances them.
	GetAcceptedOnDepartedFlights(ctx context.Context, now time.Time) ([]*order.Order, error)

	// Delete removes an order unconditionally, regardless of status.
	// Fails with an ObjectNotFound error when the id does not resolve.
	Delete(ctx context.Context, id kernel.UUID) error
}

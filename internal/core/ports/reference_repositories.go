package ports

import (
	"context"

	"cargo/internal/core/domain/model/country"
	"cargo/internal/core/domain/model/flight"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/shop"
)

// CountryRepository defines the persistence contract for country tariffs.
// The core never mutates an existing tariff; administrators create and
// delete them.
type CountryRepository interface {
	// Add persists a new country tariff. Fails with a Conflict error when
	// the country name already exists.
	Add(ctx context.Context, aggregate *country.Country) error

	// Get retrieves a country tariff by id.
	Get(ctx context.Context, id kernel.UUID) (*country.Country, error)

	// Delete removes a country tariff. Existing orders keep their price.
	Delete(ctx context.Context, id kernel.UUID) error
}

// FlightRepository defines the persistence contract for flights.
type FlightRepository interface {
	// Add persists a new flight. Fails with a Conflict error when the
	// flight number already exists.
	Add(ctx context.Context, aggregate *flight.Flight) error

	// Get retrieves a flight by id.
	Get(ctx context.Context, id kernel.UUID) (*flight.Flight, error)

	// Delete removes a flight.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ShopRepository defines the persistence contract for shops.
type ShopRepository interface {
	// Add persists a new shop.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Delete removes a shop.
	Delete(ctx context.Context, id kernel.UUID) error
}

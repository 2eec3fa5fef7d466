package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrGetFlightsQueryIsNotConstructed = errors.New(
		"GetFlightsQuery must be created via NewGetFlightsQuery constructor",
	)
)

// GetFlightsQuery retrieves every flight, soonest departure first.
type GetFlightsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFlightsQuery creates a flight listing query.
func NewGetFlightsQuery() GetFlightsQuery {
	return GetFlightsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFlightsQuery) Validate() error {
	return q.guard.Validate(ErrGetFlightsQueryIsNotConstructed)
}

// FlightListItem is one row of the flight listing.
type FlightListItem struct {
	ID            kernel.UUID
	Number        string
	DepartureTime time.Time
}

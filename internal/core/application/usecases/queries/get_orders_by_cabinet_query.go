package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrGetOrdersByCabinetQueryIsNotConstructed = errors.New(
		"GetOrdersByCabinetQuery must be created via NewGetOrdersByCabinetQuery constructor",
	)
)

// GetOrdersByCabinetQuery retrieves the order history of one cabinet.
// A cabinet with no orders is a valid empty result, not a lookup failure.
type GetOrdersByCabinetQuery struct {
	cabinetID kernel.CabinetID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCabinetQuery creates a cabinet order listing query.
func NewGetOrdersByCabinetQuery(cabinetID kernel.CabinetID) (GetOrdersByCabinetQuery, error) {
	if err := cabinetID.Validate(); err != nil {
		return GetOrdersByCabinetQuery{}, err
	}

	return GetOrdersByCabinetQuery{
		cabinetID: cabinetID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCabinetQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCabinetQueryIsNotConstructed)
}

// CabinetID returns the cabinet whose orders are listed.
func (q GetOrdersByCabinetQuery) CabinetID() kernel.CabinetID {
	return q.cabinetID
}

// OrderListItem is one row of an order listing, with the country and
// flight reference data already joined in for display.
type OrderListItem struct {
	ID               kernel.UUID
	TrackingID       string
	Weight           string
	CabinetID        string
	Price            string
	Status           string
	IsPaid           bool
	IsDeclared       bool
	CountryName      string
	CountryCode      string
	FlightNumber     string
	CreatedAt        time.Time
	LastStatusUpdate time.Time
}

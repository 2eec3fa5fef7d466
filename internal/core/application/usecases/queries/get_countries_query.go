package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrGetCountriesQueryIsNotConstructed = errors.New(
		"GetCountriesQuery must be created via NewGetCountriesQuery constructor",
	)
)

// GetCountriesQuery retrieves every country tariff, sorted by name.
type GetCountriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCountriesQuery creates a country tariff listing query.
func NewGetCountriesQuery() GetCountriesQuery {
	return GetCountriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCountriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCountriesQueryIsNotConstructed)
}

// CountryListItem is one row of the country tariff listing.
type CountryListItem struct {
	ID      kernel.UUID
	Name    string
	Code    string
	Address string
	Rate    string
}

package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrGetShopsQueryIsNotConstructed = errors.New(
		"GetShopsQuery must be created via NewGetShopsQuery constructor",
	)
)

// GetShopsQuery retrieves the listed shops with their country names.
type GetShopsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShopsQuery creates a shop listing query.
func NewGetShopsQuery() GetShopsQuery {
	return GetShopsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShopsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopsQueryIsNotConstructed)
}

// ShopListItem is one row of the shop listing. CountryName is empty for
// shops without a country reference.
type ShopListItem struct {
	ID          kernel.UUID
	Name        string
	CountryName string
}

// Package shop provides the shop entity: a store in an origin country that
// cabinet holders order from. Pure reference data.
package shop

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// ErrShopIsNotConstructed is returned when a Shop was not created via NewShop.
var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop")

// Shop is a store listed for cabinet holders, optionally tied to a country.
type Shop struct {
	id        kernel.UUID
	name      string
	countryID *kernel.UUID

	isConstructed bool
}

// NewShop creates a shop. The country reference is optional.
func NewShop(id kernel.UUID, name string, countryID *kernel.UUID) (*Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if countryID != nil {
		if err := countryID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Shop{
		id:            id,
		name:          name,
		countryID:     countryID,
		isConstructed: true,
	}, nil
}

// Validate ensures the shop was created through NewShop.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// Name returns the shop name.
func (s *Shop) Name() string {
	return s.name
}

// CountryID returns the country reference, or nil.
func (s *Shop) CountryID() *kernel.UUID {
	return s.countryID
}

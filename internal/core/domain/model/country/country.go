// Package country provides the country tariff entity. Each origin country
// carries the per-weight-unit rate used to price orders at creation time.
// Tariffs are reference data: created and deleted by administrators, read
// by the pricing service.
package country

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// ErrCountryIsNotConstructed is returned when a Country was not created via
// NewCountry.
var ErrCountryIsNotConstructed = errors.New("Country must be created via NewCountry")

// Country is an origin country with its warehouse address and tariff rate.
type Country struct {
	id      kernel.UUID
	name    string
	code    string
	address string
	rate    kernel.Money

	isConstructed bool
}

// NewCountry creates a country tariff record. The name is unique across
// countries (enforced by storage) and the rate must be strictly positive.
func NewCountry(id kernel.UUID, name, code, address string, rate kernel.Money) (*Country, error) {
	c := &Country{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCode(code),
		c.setRate(rate),
	); err != nil {
		return nil, err
	}

	c.address = address
	return c, nil
}

// Validate ensures the country was created through NewCountry.
func (c *Country) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCountryIsNotConstructed
	}
	return nil
}

// ID returns the country's unique identifier.
func (c *Country) ID() kernel.UUID {
	return c.id
}

// Name returns the unique country name.
func (c *Country) Name() string {
	return c.name
}

// Code returns the country code.
func (c *Country) Code() string {
	return c.code
}

// Address returns the origin warehouse address.
func (c *Country) Address() string {
	return c.address
}

// Rate returns the price per weight unit.
func (c *Country) Rate() kernel.Money {
	return c.rate
}

func (c *Country) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Country) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("countryName")
	}
	c.name = name
	return nil
}

func (c *Country) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("countryCode")
	}
	c.code = code
	return nil
}

func (c *Country) setRate(rate kernel.Money) error {
	if !rate.IsPositive() {
		return errs.NewValueIsInvalidError("rate must be positive")
	}
	c.rate = rate
	return nil
}

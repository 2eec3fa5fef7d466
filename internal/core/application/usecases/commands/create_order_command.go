package commands

import (
	"errors"
	"fmt"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to enter a new tracked package.
// The tracking id is supplied by the caller (it comes printed on the
// package); the price is computed by the handler from the origin country's
// tariff.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	trackingID string
	weight     decimal.Decimal
	cabinetID  kernel.CabinetID
	countryID  kernel.UUID
	flightID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an order entry command. The flight
// reference is optional; everything else is required, and weight must be
// strictly positive.
func NewCreateOrderCommand(
	trackingID string,
	weight decimal.Decimal,
	cabinetID kernel.CabinetID,
	countryID kernel.UUID,
	flightID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setWeight(weight),
		cmd.setCabinetID(cabinetID),
		cmd.setCountryID(countryID),
		cmd.setFlightID(flightID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// TrackingID returns the caller-supplied tracking identifier.
func (c CreateOrderCommand) TrackingID() string {
	return c.trackingID
}

// Weight returns the package weight.
func (c CreateOrderCommand) Weight() decimal.Decimal {
	return c.weight
}

// CabinetID returns the owning cabinet code.
func (c CreateOrderCommand) CabinetID() kernel.CabinetID {
	return c.cabinetID
}

// CountryID returns the origin country reference.
func (c CreateOrderCommand) CountryID() kernel.UUID {
	return c.countryID
}

// FlightID returns the optional flight reference.
func (c CreateOrderCommand) FlightID() *kernel.UUID {
	return c.flightID
}

func (c *CreateOrderCommand) setTrackingID(trackingID string) error {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}
	c.trackingID = trackingID
	return nil
}

func (c *CreateOrderCommand) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is not greater than 0", weight.String()))
	}
	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setCabinetID(cabinetID kernel.CabinetID) error {
	if err := cabinetID.Validate(); err != nil {
		return err
	}
	c.cabinetID = cabinetID
	return nil
}

func (c *CreateOrderCommand) setCountryID(countryID kernel.UUID) error {
	if err := countryID.Validate(); err != nil {
		return err
	}
	c.countryID = countryID
	return nil
}

func (c *CreateOrderCommand) setFlightID(flightID *kernel.UUID) error {
	if flightID == nil {
		return nil
	}
	if err := flightID.Validate(); err != nil {
		return err
	}
	c.flightID = flightID
	return nil
}

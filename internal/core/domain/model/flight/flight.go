// Package flight provides the flight entity that orders may reference.
// Flights are reference data; the departure-time job uses them to advance
// orders once their flight has left.
package flight

import (
	"errors"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// ErrFlightIsNotConstructed is returned when a Flight was not created via
// NewFlight.
var ErrFlightIsNotConstructed = errors.New("Flight must be created via NewFlight")

// Flight is a cargo flight with a unique number and a departure time.
type Flight struct {
	id            kernel.UUID
	number        string
	departureTime time.Time

	isConstructed bool
}

// NewFlight creates a flight. The number is unique across flights
// (enforced by storage).
func NewFlight(id kernel.UUID, number string, departureTime time.Time) (*Flight, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	number = strings.TrimSpace(number)
	if number == "" {
		return nil, errs.NewValueIsRequiredError("flightNumber")
	}
	if departureTime.IsZero() {
		return nil, errs.NewValueIsRequiredError("departureTime")
	}

	return &Flight{
		id:            id,
		number:        number,
		departureTime: departureTime,
		isConstructed: true,
	}, nil
}

// Validate ensures the flight was created through NewFlight.
func (f *Flight) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFlightIsNotConstructed
	}
	return nil
}

// ID returns the flight's unique identifier.
func (f *Flight) ID() kernel.UUID {
	return f.id
}

// Number returns the unique flight number.
func (f *Flight) Number() string {
	return f.number
}

// DepartureTime returns the scheduled departure.
func (f *Flight) DepartureTime() time.Time {
	return f.departureTime
}

// HasDeparted reports whether the flight has left as of now.
func (f *Flight) HasDeparted(now time.Time) bool {
	return f.departureTime.Before(now)
}

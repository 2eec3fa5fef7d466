package commands

import (
	"context"
	"errors"
	"time"

	"cargo/internal/core/domain/model/flight"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrCreateFlightCommandIsNotConstructed = errors.New(
		"CreateFlightCommand must be created via NewCreateFlightCommand constructor",
	)
)

// CreateFlightCommand represents an administrative request to register a
// cargo flight.
type CreateFlightCommand struct { //nolint:recvcheck //using for validation
	number        string
	departureTime time.Time

	guard guard.ConstructorGuard
}

// NewCreateFlightCommand creates a flight registration command.
func NewCreateFlightCommand(number string, departureTime time.Time) (CreateFlightCommand, error) {
	cmd := CreateFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if number == "" {
		return CreateFlightCommand{}, errs.NewValueIsRequiredError("number")
	}
	if departureTime.IsZero() {
		return CreateFlightCommand{}, errs.NewValueIsRequiredError("departureTime")
	}

	cmd.number = number
	cmd.departureTime = departureTime
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFlightCommand) Validate() error {
	return c.guard.Validate(ErrCreateFlightCommandIsNotConstructed)
}

// Number returns the flight number.
func (c CreateFlightCommand) Number() string { return c.number }

// DepartureTime returns the scheduled departure.
func (c CreateFlightCommand) DepartureTime() time.Time { return c.departureTime }

// CreateFlightCommandHandler registers a new flight. The unique index on
// the flight number converts duplicates into a Conflict error.
type CreateFlightCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewCreateFlightCommandHandler creates a handler for flight registration.
func NewCreateFlightCommandHandler(uowFactory FlightUoWFactory) CreateFlightCommandHandler {
	return CreateFlightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flight registration command.
func (h CreateFlightCommandHandler) Handle(ctx context.Context, cmd CreateFlightCommand) (*flight.Flight, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	f, err := flight.NewFlight(kernel.NewUUID(), cmd.Number(), cmd.DepartureTime())
	if err != nil {
		return nil, err
	}

	if err = uow.FlightRepository().Add(ctx, f); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return f, nil
}

package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrDeleteFlightCommandIsNotConstructed = errors.New(
		"DeleteFlightCommand must be created via NewDeleteFlightCommand constructor",
	)
)

// DeleteFlightCommand represents an administrative request to remove a
// flight. Orders referencing it keep their flight id.
type DeleteFlightCommand struct { //nolint:recvcheck //using for validation
	flightID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteFlightCommand creates a flight deletion command.
func NewDeleteFlightCommand(flightID kernel.UUID) (DeleteFlightCommand, error) {
	cmd := DeleteFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := flightID.Validate(); err != nil {
		return DeleteFlightCommand{}, err
	}
	cmd.flightID = flightID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteFlightCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFlightCommandIsNotConstructed)
}

// FlightID returns the target flight identifier.
func (c DeleteFlightCommand) FlightID() kernel.UUID {
	return c.flightID
}

// DeleteFlightCommandHandler removes a flight record.
type DeleteFlightCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewDeleteFlightCommandHandler creates a handler for flight deletion.
func NewDeleteFlightCommandHandler(uowFactory FlightUoWFactory) DeleteFlightCommandHandler {
	return DeleteFlightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flight deletion command.
func (h DeleteFlightCommandHandler) Handle(ctx context.Context, cmd DeleteFlightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.FlightRepository().Delete(ctx, cmd.FlightID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

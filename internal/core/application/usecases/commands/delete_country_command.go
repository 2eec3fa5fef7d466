package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrDeleteCountryCommandIsNotConstructed = errors.New(
		"DeleteCountryCommand must be created via NewDeleteCountryCommand constructor",
	)
)

// DeleteCountryCommand represents an administrative request to remove a
// country tariff. Orders priced against it keep their price.
type DeleteCountryCommand struct { //nolint:recvcheck //using for validation
	countryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCountryCommand creates a country deletion command.
func NewDeleteCountryCommand(countryID kernel.UUID) (DeleteCountryCommand, error) {
	cmd := DeleteCountryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := countryID.Validate(); err != nil {
		return DeleteCountryCommand{}, err
	}
	cmd.countryID = countryID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCountryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCountryCommandIsNotConstructed)
}

// CountryID returns the target country identifier.
func (c DeleteCountryCommand) CountryID() kernel.UUID {
	return c.countryID
}

// DeleteCountryCommandHandler removes a country tariff record.
type DeleteCountryCommandHandler struct {
	uowFactory CountryUoWFactory
}

// NewDeleteCountryCommandHandler creates a handler for country deletion.
func NewDeleteCountryCommandHandler(uowFactory CountryUoWFactory) DeleteCountryCommandHandler {
	return DeleteCountryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the country deletion command.
func (h DeleteCountryCommandHandler) Handle(ctx context.Context, cmd DeleteCountryCommand) error {
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

	if err := uow.CountryRepository().Delete(ctx, cmd.CountryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

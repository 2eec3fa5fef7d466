package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/country"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrCreateCountryCommandIsNotConstructed = errors.New(
		"CreateCountryCommand must be created via NewCreateCountryCommand constructor",
	)
)

// CreateCountryCommand represents an administrative request to register an
// origin country with its tariff rate.
type CreateCountryCommand struct { //nolint:recvcheck //using for validation
	name    string
	code    string
	address string
	rate    kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateCountryCommand creates a country registration command.
func NewCreateCountryCommand(name, code, address string, rate kernel.Money) (CreateCountryCommand, error) {
	cmd := CreateCountryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == "" {
		return CreateCountryCommand{}, errs.NewValueIsRequiredError("name")
	}
	if code == "" {
		return CreateCountryCommand{}, errs.NewValueIsRequiredError("code")
	}
	if !rate.IsPositive() {
		return CreateCountryCommand{}, errs.NewValueIsInvalidError("rate must be positive")
	}

	cmd.name = name
	cmd.code = code
	cmd.address = address
	cmd.rate = rate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCountryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCountryCommandIsNotConstructed)
}

// Name returns the country name.
func (c CreateCountryCommand) Name() string { return c.name }

// Code returns the country code.
func (c CreateCountryCommand) Code() string { return c.code }

// Address returns the origin warehouse address.
func (c CreateCountryCommand) Address() string { return c.address }

// Rate returns the tariff rate per weight unit.
func (c CreateCountryCommand) Rate() kernel.Money { return c.rate }

// CreateCountryCommandHandler registers a new country tariff. The unique
// index on the country name converts duplicates into a Conflict error.
type CreateCountryCommandHandler struct {
	uowFactory CountryUoWFactory
}

// NewCreateCountryCommandHandler creates a handler for country registration.
func NewCreateCountryCommandHandler(uowFactory CountryUoWFactory) CreateCountryCommandHandler {
	return CreateCountryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the country registration command.
func (h CreateCountryCommandHandler) Handle(
	ctx context.Context, cmd CreateCountryCommand,
) (*country.Country, error) {
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

	c, err := country.NewCountry(kernel.NewUUID(), cmd.Name(), cmd.Code(), cmd.Address(), cmd.Rate())
	if err != nil {
		return nil, err
	}

	if err = uow.CountryRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/shop"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrCreateShopCommandIsNotConstructed = errors.New(
		"CreateShopCommand must be created via NewCreateShopCommand constructor",
	)
)

// CreateShopCommand represents an administrative request to list a shop for
// cabinet holders.
type CreateShopCommand struct { //nolint:recvcheck //using for validation
	name      string
	countryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShopCommand creates a shop listing command. The country
// reference is optional.
func NewCreateShopCommand(name string, countryID *kernel.UUID) (CreateShopCommand, error) {
	cmd := CreateShopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == "" {
		return CreateShopCommand{}, errs.NewValueIsRequiredError("name")
	}
	if countryID != nil {
		if err := countryID.Validate(); err != nil {
			return CreateShopCommand{}, err
		}
	}

	cmd.name = name
	cmd.countryID = countryID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShopCommand) Validate() error {
	return c.guard.Validate(ErrCreateShopCommandIsNotConstructed)
}

// Name returns the shop name.
func (c CreateShopCommand) Name() string { return c.name }

// CountryID returns the optional country reference.
func (c CreateShopCommand) CountryID() *kernel.UUID { return c.countryID }

// CreateShopCommandHandler lists a new shop.
type CreateShopCommandHandler struct {
	uowFactory ShopUoWFactory
}

// NewCreateShopCommandHandler creates a handler for shop listing.
func NewCreateShopCommandHandler(uowFactory ShopUoWFactory) CreateShopCommandHandler {
	return CreateShopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shop listing command.
func (h CreateShopCommandHandler) Handle(ctx context.Context, cmd CreateShopCommand) (*shop.Shop, error) {
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

	s, err := shop.NewShop(kernel.NewUUID(), cmd.Name(), cmd.CountryID())
	if err != nil {
		return nil, err
	}

	if err = uow.ShopRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

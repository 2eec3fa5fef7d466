package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrDeleteShopCommandIsNotConstructed = errors.New(
		"DeleteShopCommand must be created via NewDeleteShopCommand constructor",
	)
)

// DeleteShopCommand represents an administrative request to delist a shop.
type DeleteShopCommand struct { //nolint:recvcheck //using for validation
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShopCommand creates a shop delisting command.
func NewDeleteShopCommand(shopID kernel.UUID) (DeleteShopCommand, error) {
	cmd := DeleteShopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shopID.Validate(); err != nil {
		return DeleteShopCommand{}, err
	}
	cmd.shopID = shopID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShopCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShopCommandIsNotConstructed)
}

// ShopID returns the target shop identifier.
func (c DeleteShopCommand) ShopID() kernel.UUID {
	return c.shopID
}

// DeleteShopCommandHandler delists a shop.
type DeleteShopCommandHandler struct {
	uowFactory ShopUoWFactory
}

// NewDeleteShopCommandHandler creates a handler for shop delisting.
func NewDeleteShopCommandHandler(uowFactory ShopUoWFactory) DeleteShopCommandHandler {
	return DeleteShopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shop delisting command.
func (h DeleteShopCommandHandler) Handle(ctx context.Context, cmd DeleteShopCommand) error {
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

	if err := uow.ShopRepository().Delete(ctx, cmd.ShopID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

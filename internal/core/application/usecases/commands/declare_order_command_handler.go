package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/order"
)

// DeclareOrderCommandHandler marks an order's customs declaration as filed.
// Declaring an already-declared order succeeds without changing anything.
type DeclareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeclareOrderCommandHandler creates a handler for customs declarations.
func NewDeclareOrderCommandHandler(uowFactory OrderUoWFactory) DeclareOrderCommandHandler {
	return DeclareOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the declaration command.
func (h DeclareOrderCommandHandler) Handle(ctx context.Context, cmd DeclareOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	o.Declare(time.Now().UTC())

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

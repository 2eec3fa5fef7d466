package commands

import (
	"context"

	"cargo/internal/core/domain/model/order"
)

// AdvanceDepartedOrdersCommandHandler moves Accepted orders whose assigned
// flight has already departed into OnTheWay. The flight departure job runs
// it on a schedule.
type AdvanceDepartedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceDepartedOrdersCommandHandler creates a handler for the
// departure sweep.
func NewAdvanceDepartedOrdersCommandHandler(uowFactory OrderUoWFactory) AdvanceDepartedOrdersCommandHandler {
	return AdvanceDepartedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances every matching order and reports how many it moved.
func (h AdvanceDepartedOrdersCommandHandler) Handle(
	ctx context.Context, cmd AdvanceDepartedOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAcceptedOnDepartedFlights(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	for _, o := range orders {
		if err = o.ChangeStatus(order.OnTheWay, cmd.Now()); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}

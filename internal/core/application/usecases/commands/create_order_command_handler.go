package commands

import (
	"context"
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

// CreateOrderCommandHandler enters a new tracked package. The price is
// resolved from the origin country's tariff once, at creation time, and
// stays fixed on the order afterwards.
type CreateOrderCommandHandler struct {
	uowFactory       OrderEntryUoWFactory
	tariffCalculator services.TariffCalculator
}

// NewCreateOrderCommandHandler creates a handler for order entry.
func NewCreateOrderCommandHandler(
	uowFactory OrderEntryUoWFactory,
	tariffCalculator services.TariffCalculator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:       uowFactory,
		tariffCalculator: tariffCalculator,
	}
}

// Handle processes the order entry command. The tracking id must be unused,
// the cabinet must belong to a registered account, and the country (and
// flight, when given) must resolve. The unique index on the tracking id
// column remains the authoritative duplicate defense; the pre-check here
// only produces the friendlier error on the common path.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	existing, err := orderRepo.GetByTrackingID(ctx, cmd.TrackingID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConflictError("trackingId", cmd.TrackingID())
	}

	if _, err = uow.AccountRepository().GetByCabinetID(ctx, cmd.CabinetID()); err != nil {
		return nil, err
	}

	tariff, err := uow.CountryRepository().Get(ctx, cmd.CountryID())
	if err != nil {
		return nil, err
	}

	if cmd.FlightID() != nil {
		if _, err = uow.FlightRepository().Get(ctx, *cmd.FlightID()); err != nil {
			return nil, err
		}
	}

	price, err := h.tariffCalculator.Calculate(cmd.Weight(), tariff)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.TrackingID(),
		cmd.Weight(),
		cmd.CabinetID(),
		cmd.CountryID(),
		cmd.FlightID(),
		price,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

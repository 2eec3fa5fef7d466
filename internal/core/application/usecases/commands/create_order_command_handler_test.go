package commands_test

import (
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/country"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCountry(t *testing.T, rate string) *country.Country {
	t.Helper()
	money, err := kernel.NewMoneyFromString(rate)
	require.NoError(t, err)
	c, err := country.NewCountry(kernel.NewUUID(), "Turkey", "TR", "Istanbul warehouse", money)
	require.NoError(t, err)
	return c
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	holder := newTestAccount(t, "0")
	tariff := newTestCountry(t, "7.50")
	cmd, err := commands.NewCreateOrderCommand(
		"TRK-2001", decimal.NewFromInt(2), holder.CabinetID(), tariff.ID(), nil,
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	countryRepo := new(MockCountryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTrackingID", ctx, "TRK-2001").
			Return(nil, errs.NewObjectNotFoundError("trackingId", "TRK-2001")).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByCabinetID", ctx, holder.CabinetID()).Return(holder, nil).Once(),
		uow.On("CountryRepository").Return(countryRepo).Once(),
		countryRepo.On("Get", ctx, tariff.ID()).Return(tariff, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewTariffCalculator())
	o, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	expected, err := kernel.NewMoneyFromString("15")
	require.NoError(t, err)
	require.True(t, o.Price().IsEqual(expected))
	require.False(t, o.IsPaid())
	require.Equal(t, "TRK-2001", o.TrackingID())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DuplicateTrackingID(t *testing.T) {
	ctx := t.Context()
	holder := newTestAccount(t, "0")
	existing := newTestOrder(t, holder.CabinetID(), "15", false)
	cmd, err := commands.NewCreateOrderCommand(
		existing.TrackingID(), decimal.NewFromInt(2), holder.CabinetID(), kernel.NewUUID(), nil,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTrackingID", ctx, existing.TrackingID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewTariffCalculator())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownCabinet(t *testing.T) {
	ctx := t.Context()
	cabinetID := kernel.GenerateCabinetID()
	cmd, err := commands.NewCreateOrderCommand(
		"TRK-2002", decimal.NewFromInt(1), cabinetID, kernel.NewUUID(), nil,
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTrackingID", ctx, "TRK-2002").
			Return(nil, errs.NewObjectNotFoundError("trackingId", "TRK-2002")).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByCabinetID", ctx, cabinetID).
			Return(nil, errs.NewObjectNotFoundError("cabinetId", cabinetID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewTariffCalculator())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownFlight(t *testing.T) {
	ctx := t.Context()
	holder := newTestAccount(t, "0")
	tariff := newTestCountry(t, "7.50")
	flightID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		"TRK-2003", decimal.NewFromInt(1), holder.CabinetID(), tariff.ID(), &flightID,
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	countryRepo := new(MockCountryRepository)
	flightRepo := new(MockFlightRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTrackingID", ctx, "TRK-2003").
			Return(nil, errs.NewObjectNotFoundError("trackingId", "TRK-2003")).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByCabinetID", ctx, holder.CabinetID()).Return(holder, nil).Once(),
		uow.On("CountryRepository").Return(countryRepo).Once(),
		countryRepo.On("Get", ctx, tariff.ID()).Return(tariff, nil).Once(),
		uow.On("FlightRepository").Return(flightRepo).Once(),
		flightRepo.On("Get", ctx, flightID).
			Return(nil, errs.NewObjectNotFoundError("flightId", flightID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewTariffCalculator())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewCreateOrderCommand_RejectsBadInput(t *testing.T) {
	holder := newTestAccount(t, "0")

	_, err := commands.NewCreateOrderCommand("", decimal.NewFromInt(1), holder.CabinetID(), kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand("TRK-1", decimal.Zero, holder.CabinetID(), kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateOrderCommand("TRK-1", decimal.NewFromInt(-1), holder.CabinetID(), kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

package commands_test

import (
	"testing"
	"time"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCountryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	rate, err := kernel.NewMoneyFromString("7.50")
	require.NoError(t, err)
	cmd, err := commands.NewCreateCountryCommand("Turkey", "TR", "Istanbul warehouse", rate)
	require.NoError(t, err)

	repo := new(MockCountryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CountryRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*country.Country")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCountryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCountryCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Turkey", created.Name())
	require.True(t, created.Rate().IsEqual(rate))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCountryCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	rate, err := kernel.NewMoneyFromString("7.50")
	require.NoError(t, err)
	cmd, err := commands.NewCreateCountryCommand("Turkey", "TR", "", rate)
	require.NoError(t, err)

	repo := new(MockCountryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CountryRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*country.Country")).
			Return(errs.NewConflictError("name", "Turkey")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCountryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCountryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestNewCreateCountryCommand_RejectsBadInput(t *testing.T) {
	rate, err := kernel.NewMoneyFromString("7.50")
	require.NoError(t, err)

	_, err = commands.NewCreateCountryCommand("", "TR", "", rate)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateCountryCommand("Turkey", "", "", rate)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateCountryCommand("Turkey", "TR", "", kernel.ZeroMoney())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateFlightCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	departure := time.Now().UTC().Add(48 * time.Hour)
	cmd, err := commands.NewCreateFlightCommand("TK-940", departure)
	require.NoError(t, err)

	repo := new(MockFlightRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FlightRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*flight.Flight")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFlightUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateFlightCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "TK-940", created.Number())
	require.Equal(t, departure, created.DepartureTime())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteFlightCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	flightID := kernel.NewUUID()
	cmd, err := commands.NewDeleteFlightCommand(flightID)
	require.NoError(t, err)

	repo := new(MockFlightRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FlightRepository").Return(repo).Once(),
		repo.On("Delete", ctx, flightID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFlightUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteFlightCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShopCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	countryID := kernel.NewUUID()
	cmd, err := commands.NewCreateShopCommand("Trendyol", &countryID)
	require.NoError(t, err)

	repo := new(MockShopRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*shop.Shop")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShopUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShopCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Trendyol", created.Name())
	require.NotNil(t, created.CountryID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteShopCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shopID := kernel.NewUUID()
	cmd, err := commands.NewDeleteShopCommand(shopID)
	require.NoError(t, err)

	repo := new(MockShopRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopRepository").Return(repo).Once(),
		repo.On("Delete", ctx, shopID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShopUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteShopCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteCountryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	countryID := kernel.NewUUID()
	cmd, err := commands.NewDeleteCountryCommand(countryID)
	require.NoError(t, err)

	repo := new(MockCountryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CountryRepository").Return(repo).Once(),
		repo.On("Delete", ctx, countryID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCountryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCountryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, newTestAccount(t, "0").CabinetID(), "15", false)
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "OnTheWay")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.OnTheWay, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_SkippingForwardAllowed(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, newTestAccount(t, "0").CabinetID(), "15", false)
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "Delivered")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Delivered, updated.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_BackwardRejected(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, newTestAccount(t, "0").CabinetID(), "15", false)
	require.NoError(t, o.ChangeStatus(order.Arrived, o.CreatedAt()))
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "OnTheWay")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, order.Arrived, o.Status())
	uow.AssertExpectations(t)
}

func TestNewUpdateOrderStatusCommand_RejectsUnknownStatus(t *testing.T) {
	o := newTestOrder(t, newTestAccount(t, "0").CabinetID(), "15", false)

	_, err := commands.NewUpdateOrderStatusCommand(o.ID(), "Teleported")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	// Status names are case sensitive wire literals.
	_, err = commands.NewUpdateOrderStatusCommand(o.ID(), "delivered")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

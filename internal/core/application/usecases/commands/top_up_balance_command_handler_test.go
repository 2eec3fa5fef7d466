package commands_test

import (
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopUpBalanceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	holder := newTestAccount(t, "25.50")
	amount, err := kernel.NewMoneyFromString("10")
	require.NoError(t, err)
	cmd, err := commands.NewTopUpBalanceCommand(holder.ID(), amount)
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, holder.ID()).Return(holder, nil).Once(),
		repo.On("Update", ctx, holder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTopUpBalanceCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	expected, err := kernel.NewMoneyFromString("35.50")
	require.NoError(t, err)
	require.True(t, result.Balance.IsEqual(expected))
	require.True(t, result.AccountID.IsEqual(holder.ID()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTopUpBalanceCommandHandler_Handle_AccountNotFound(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	amount, err := kernel.NewMoneyFromString("10")
	require.NoError(t, err)
	cmd, err := commands.NewTopUpBalanceCommand(accountID, amount)
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, accountID).
			Return(nil, errs.NewObjectNotFoundError("account", accountID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTopUpBalanceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewTopUpBalanceCommand_RejectsNonPositiveAmount(t *testing.T) {
	accountID := kernel.NewUUID()

	_, err := commands.NewTopUpBalanceCommand(accountID, kernel.ZeroMoney())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

package commands

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
)

// TopUpBalanceResult reports the balance after a successful deposit.
type TopUpBalanceResult struct {
	AccountID kernel.UUID
	CabinetID kernel.CabinetID
	Balance   kernel.Money
}

// TopUpBalanceCommandHandler credits the prepaid balance. The account row
// is locked for the duration of the transaction so deposits serialize with
// concurrent settlements.
type TopUpBalanceCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewTopUpBalanceCommandHandler creates a handler for balance deposits.
func NewTopUpBalanceCommandHandler(uowFactory AccountUoWFactory) TopUpBalanceCommandHandler {
	return TopUpBalanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit and returns the new balance.
func (h TopUpBalanceCommandHandler) Handle(ctx context.Context, cmd TopUpBalanceCommand) (TopUpBalanceResult, error) {
	if err := cmd.Validate(); err != nil {
		return TopUpBalanceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TopUpBalanceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()

	holder, err := repo.GetForUpdate(ctx, cmd.AccountID())
	if err != nil {
		return TopUpBalanceResult{}, err
	}

	if err = holder.Deposit(cmd.Amount()); err != nil {
		return TopUpBalanceResult{}, err
	}

	if err = repo.Update(ctx, holder); err != nil {
		return TopUpBalanceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TopUpBalanceResult{}, err
	}

	return TopUpBalanceResult{
		AccountID: holder.ID(),
		CabinetID: holder.CabinetID(),
		Balance:   holder.Balance(),
	}, nil
}

package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/errs"
)

// ErrOrderAccessDenied is returned when the order's cabinet code does not
// match the paying account's cabinet code. Cross-tenant payment attempts
// are rejected without mutating anything.
var ErrOrderAccessDenied = errors.New("order does not belong to the authenticated cabinet")

// PayOrderResult carries the post-settlement state of both aggregates.
type PayOrderResult struct {
	Account *account.Account
	Order   *order.Order
}

// PayOrderCommandHandler settles a single order payment: it debits the
// account balance and marks the order paid inside one transaction, so that
// either both mutations are visible or neither is.
//
// Both rows are loaded under FOR UPDATE locks. Two concurrent settlements
// of the same order serialize on the order row: the first commits, the
// second observes the paid flag and fails with order.ErrAlreadyPaid. Two
// concurrent settlements by the same account serialize on the account row,
// so the sufficiency check always runs against the latest committed balance.
type PayOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewPayOrderCommandHandler creates a handler for payment settlement.
func NewPayOrderCommandHandler(uowFactory SettlementUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement. Validation order: existence of both
// entities, cabinet ownership, the paid flag, then balance sufficiency.
// Any failure rolls the transaction back with no partial effect.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (PayOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PayOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PayOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	orderRepo := uow.OrderRepository()

	payer, err := accountRepo.GetForUpdate(ctx, cmd.AccountID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// Do not reveal which of the two entities is missing.
		return PayOrderResult{}, errs.NewObjectNotFoundError("account or order", cmd.OrderID().String())
	}
	if err != nil {
		return PayOrderResult{}, err
	}

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return PayOrderResult{}, errs.NewObjectNotFoundError("account or order", cmd.OrderID().String())
	}
	if err != nil {
		return PayOrderResult{}, err
	}

	if !o.CabinetID().IsEqual(payer.CabinetID()) {
		return PayOrderResult{}, ErrOrderAccessDenied
	}

	if o.IsPaid() {
		return PayOrderResult{}, order.ErrAlreadyPaid
	}

	if err = payer.Withdraw(o.Price()); err != nil {
		return PayOrderResult{}, err
	}

	if err = o.MarkPaid(); err != nil {
		return PayOrderResult{}, err
	}

	if err = accountRepo.Update(ctx, payer); err != nil {
		return PayOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return PayOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PayOrderResult{}, err
	}

	return PayOrderResult{Account: payer, Order: o}, nil
}

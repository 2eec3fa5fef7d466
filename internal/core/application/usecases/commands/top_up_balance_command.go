package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrTopUpBalanceCommandIsNotConstructed = errors.New(
		"TopUpBalanceCommand must be created via NewTopUpBalanceCommand constructor",
	)
)

// TopUpBalanceCommand represents a deposit into the authenticated account's
// prepaid balance.
type TopUpBalanceCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	amount    kernel.Money

	guard guard.ConstructorGuard
}

// NewTopUpBalanceCommand creates a deposit command. The amount must be
// strictly positive; there is no upper bound.
func NewTopUpBalanceCommand(accountID kernel.UUID, amount kernel.Money) (TopUpBalanceCommand, error) {
	cmd := TopUpBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setAmount(amount),
	); err != nil {
		return TopUpBalanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TopUpBalanceCommand) Validate() error {
	return c.guard.Validate(ErrTopUpBalanceCommandIsNotConstructed)
}

// AccountID returns the authenticated account's identifier.
func (c TopUpBalanceCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Amount returns the deposit amount.
func (c TopUpBalanceCommand) Amount() kernel.Money {
	return c.amount
}

func (c *TopUpBalanceCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *TopUpBalanceCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("deposit amount must be positive")
	}
	c.amount = amount
	return nil
}

package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
)

// PayOrderCommand represents a request to settle an order against the
// authenticated account's prepaid balance. The account id comes from the
// verified identity supplied by the authentication layer, never from the
// request body.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a settlement command. Both identifiers must be
// valid; a malformed order reference is rejected here, before any
// transaction starts.
func NewPayOrderCommand(accountID, orderID kernel.UUID) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setOrderID(orderID),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// AccountID returns the authenticated account's identifier.
func (c PayOrderCommand) AccountID() kernel.UUID {
	return c.accountID
}

// OrderID returns the order to settle.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PayOrderCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrDeclareOrderCommandIsNotConstructed = errors.New(
		"DeclareOrderCommand must be created via NewDeclareOrderCommand constructor",
	)
)

// DeclareOrderCommand represents a request to mark an order's customs
// declaration as filed.
type DeclareOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclareOrderCommand creates a declaration command.
func NewDeclareOrderCommand(orderID kernel.UUID) (DeclareOrderCommand, error) {
	cmd := DeclareOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeclareOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclareOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclareOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c DeclareOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeclareOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

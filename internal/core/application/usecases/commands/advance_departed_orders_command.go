package commands

import (
	"errors"
	"time"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrAdvanceDepartedOrdersCommandIsNotConstructed = errors.New(
		"AdvanceDepartedOrdersCommand must be created via NewAdvanceDepartedOrdersCommand constructor",
	)
)

// AdvanceDepartedOrdersCommand represents the scheduled sweep that moves
// Accepted orders onto departed flights forward.
type AdvanceDepartedOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceDepartedOrdersCommand creates a sweep command anchored at now.
func NewAdvanceDepartedOrdersCommand(now time.Time) (AdvanceDepartedOrdersCommand, error) {
	cmd := AdvanceDepartedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNow(now); err != nil {
		return AdvanceDepartedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDepartedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDepartedOrdersCommandIsNotConstructed)
}

// Now returns the sweep's reference time.
func (c AdvanceDepartedOrdersCommand) Now() time.Time {
	return c.now
}

func (c *AdvanceDepartedOrdersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}

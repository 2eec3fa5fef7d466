package commands

import (
	"context"
	"errors"
	"time"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// RegisterAccountCommandHandler registers new accounts. It hashes the
// credential, allocates a unique cabinet code with bounded retry, and
// persists the account with a zero balance.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	allocator  services.CabinetAllocator
}

// NewRegisterAccountCommandHandler creates a handler for registration.
func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	allocator services.CabinetAllocator,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		allocator:  allocator,
	}
}

// Handle processes the registration command. A taken email fails with a
// Conflict error; cabinet allocation exhaustion surfaces
// services.ErrCabinetExhausted, which is a server fault rather than a
// client input error.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()

	_, err := repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewConflictError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	cabinetID, err := h.allocator.Allocate(ctx, func(ctx context.Context, id kernel.CabinetID) (bool, error) {
		return repo.CabinetExists(ctx, id)
	})
	if err != nil {
		return err
	}

	newAccount, err := account.NewAccount(
		kernel.NewUUID(),
		cmd.Email(),
		passwordHash,
		cmd.FirstName(),
		cmd.LastName(),
		cmd.PhoneNumber(),
		cmd.Address(),
		cmd.Role(),
		cabinetID,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, newAccount); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

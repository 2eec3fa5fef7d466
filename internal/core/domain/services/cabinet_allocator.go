package services

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/kernel"
)

// ErrCabinetExhausted is returned when every allocation attempt collided
// with an existing cabinet code. Registration must abort and report a
// server-side failure; the caller may retry the whole registration.
var ErrCabinetExhausted = errors.New("failed to allocate a unique cabinet id")

// cabinetAllocationAttempts bounds the collision retry loop.
const cabinetAllocationAttempts = 5

// CabinetExistsFunc reports whether a candidate cabinet code is already
// taken. Implementations query the account repository.
type CabinetExistsFunc func(ctx context.Context, id kernel.CabinetID) (bool, error)

// CabinetAllocator is a domain service that produces unique cabinet codes.
// The pre-check through CabinetExistsFunc only reduces retries; the storage
// layer's unique constraint remains the authoritative defense against the
// check-then-insert race.
type CabinetAllocator struct{}

// NewCabinetAllocator creates a CabinetAllocator.
func NewCabinetAllocator() CabinetAllocator {
	return CabinetAllocator{}
}

// Allocate generates candidates until one passes the existence check, up to
// the attempt bound. Lookup failures abort immediately; exhausting every
// attempt fails with ErrCabinetExhausted.
func (CabinetAllocator) Allocate(ctx context.Context, exists CabinetExistsFunc) (kernel.CabinetID, error) {
	for i := 0; i < cabinetAllocationAttempts; i++ {
		candidate := kernel.GenerateCabinetID()

		taken, err := exists(ctx, candidate)
		if err != nil {
			return kernel.CabinetID{}, err
		}
		if !taken {
			return candidate, nil
		}
	}

	return kernel.CabinetID{}, ErrCabinetExhausted
}

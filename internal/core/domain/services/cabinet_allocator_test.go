package services_test

import (
	"context"
	"errors"
	"testing"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCabinetAllocator_Allocate(t *testing.T) {
	allocator := services.NewCabinetAllocator()
	ctx := context.Background()

	t.Run("returns first candidate when nothing collides", func(t *testing.T) {
		calls := 0
		id, err := allocator.Allocate(ctx, func(_ context.Context, _ kernel.CabinetID) (bool, error) {
			calls++
			return false, nil
		})

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, 1, calls)
	})

	t.Run("retries past collisions", func(t *testing.T) {
		for collisions := 1; collisions <= 4; collisions++ {
			calls := 0
			id, err := allocator.Allocate(ctx, func(_ context.Context, _ kernel.CabinetID) (bool, error) {
				calls++
				return calls <= collisions, nil
			})

			require.NoError(t, err, "collisions=%d", collisions)
			require.NoError(t, id.Validate())
			assert.Equal(t, collisions+1, calls)
		}
	})

	t.Run("five consecutive collisions exhaust the allocator", func(t *testing.T) {
		calls := 0
		_, err := allocator.Allocate(ctx, func(_ context.Context, _ kernel.CabinetID) (bool, error) {
			calls++
			return true, nil
		})

		require.ErrorIs(t, err, services.ErrCabinetExhausted)
		assert.Equal(t, 5, calls)
	})

	t.Run("lookup failure aborts immediately", func(t *testing.T) {
		lookupErr := errors.New("storage unavailable")
		calls := 0
		_, err := allocator.Allocate(ctx, func(_ context.Context, _ kernel.CabinetID) (bool, error) {
			calls++
			return false, lookupErr
		})

		require.ErrorIs(t, err, lookupErr)
		assert.Equal(t, 1, calls)
	})
}

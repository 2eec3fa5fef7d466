package order_test

import (
	"testing"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"CN-2024-0042",
		decimal.RequireFromString("2.5"),
		kernel.GenerateCabinetID(),
		kernel.NewUUID(),
		nil,
		price(t, "40"),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validCabinet := kernel.GenerateCabinetID()
	validCountry := kernel.NewUUID()
	validWeight := decimal.RequireFromString("2.5")
	now := time.Now()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		flightID := kernel.NewUUID()

		o, err := order.NewOrder(validID, "CN-2024-0042", validWeight,
			validCabinet, validCountry, &flightID, price(t, "40"), now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "CN-2024-0042", o.TrackingID())
		assert.Equal(t, order.Accepted, o.Status())
		assert.False(t, o.IsPaid())
		assert.False(t, o.IsDeclared())
		assert.True(t, o.Price().IsEqual(price(t, "40")))
		require.NotNil(t, o.FlightID())
		assert.True(t, o.FlightID().IsEqual(flightID))
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.LastStatusUpdate())
	})

	t.Run("flight reference is optional", func(t *testing.T) {
		o, err := order.NewOrder(validID, "CN-1", validWeight,
			validCabinet, validCountry, nil, price(t, "40"), now)

		require.NoError(t, err)
		assert.Nil(t, o.FlightID())
	})

	t.Run("should trim the tracking id", func(t *testing.T) {
		o, err := order.NewOrder(validID, "  CN-7  ", validWeight,
			validCabinet, validCountry, nil, price(t, "40"), now)

		require.NoError(t, err)
		assert.Equal(t, "CN-7", o.TrackingID())
	})

	t.Run("should fail with empty tracking id", func(t *testing.T) {
		_, err := order.NewOrder(validID, "   ", validWeight,
			validCabinet, validCountry, nil, price(t, "40"), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero weight", func(t *testing.T) {
		_, err := order.NewOrder(validID, "CN-1", decimal.Zero,
			validCabinet, validCountry, nil, price(t, "0"), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative weight", func(t *testing.T) {
		_, err := order.NewOrder(validID, "CN-1", decimal.RequireFromString("-1.5"),
			validCabinet, validCountry, nil, price(t, "0"), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero cabinet id", func(t *testing.T) {
		var cabinetID kernel.CabinetID

		_, err := order.NewOrder(validID, "CN-1", validWeight,
			cabinetID, validCountry, nil, price(t, "40"), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CabinetID must be created")
	})

	t.Run("should fail with zero country reference", func(t *testing.T) {
		var countryID kernel.UUID

		_, err := order.NewOrder(validID, "CN-1", validWeight,
			validCabinet, countryID, nil, price(t, "40"), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidCabinet kernel.CabinetID

		_, err := order.NewOrder(invalidID, "", decimal.Zero,
			invalidCabinet, validCountry, nil, price(t, "0"), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "trackingId")
		assert.Contains(t, err.Error(), "weight")
		assert.Contains(t, err.Error(), "CabinetID must be created")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("advances through the lifecycle and stamps the time", func(t *testing.T) {
		o := newOrder(t)
		later := o.CreatedAt().Add(time.Hour)

		require.NoError(t, o.ChangeStatus(order.OnTheWay, later))

		assert.Equal(t, order.OnTheWay, o.Status())
		assert.Equal(t, later, o.LastStatusUpdate())
	})

	t.Run("rejects backward moves", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Arrived, time.Now()))

		err := o.ChangeStatus(order.Accepted, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Arrived, o.Status())
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Status(42), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Declare(t *testing.T) {
	t.Run("declaration is one-way and idempotent", func(t *testing.T) {
		o := newOrder(t)
		first := o.CreatedAt().Add(time.Minute)
		second := o.CreatedAt().Add(time.Hour)

		o.Declare(first)
		assert.True(t, o.IsDeclared())
		assert.Equal(t, first, o.LastStatusUpdate())

		o.Declare(second)
		assert.True(t, o.IsDeclared())
		assert.Equal(t, first, o.LastStatusUpdate())
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("first payment succeeds, second fails", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.MarkPaid())
		assert.True(t, o.IsPaid())

		err := o.MarkPaid()
		require.ErrorIs(t, err, order.ErrAlreadyPaid)
		assert.True(t, o.IsPaid())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores status and flags from persistence", func(t *testing.T) {
		id := kernel.NewUUID()
		created := time.Now().Add(-48 * time.Hour)
		updated := time.Now().Add(-time.Hour)

		o, err := order.RestoreOrder(id, "CN-9", decimal.RequireFromString("1.2"),
			kernel.GenerateCabinetID(), kernel.NewUUID(), nil, price(t, "12.5"),
			order.Arrived, true, true, created, updated)

		require.NoError(t, err)
		assert.Equal(t, order.Arrived, o.Status())
		assert.True(t, o.IsPaid())
		assert.True(t, o.IsDeclared())
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, updated, o.LastStatusUpdate())
	})

	t.Run("rejects an invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "CN-9", decimal.RequireFromString("1.2"),
			kernel.GenerateCabinetID(), kernel.NewUUID(), nil, price(t, "12.5"),
			order.Status(42), false, false, time.Now(), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

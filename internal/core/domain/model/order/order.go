package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAlreadyPaid is returned by MarkPaid for an order that has already
	// been settled. Payment is intentionally not idempotent: a retried
	// payment after success must be rejected, not silently absorbed.
	ErrAlreadyPaid = errors.New("order has already been paid")
)

// Order is the aggregate root for a tracked package. Its price is computed
// from the origin country's tariff at creation time and never recomputed;
// the paid and declared flags only move from false to true.
type Order struct {
	id               kernel.UUID
	trackingID       string
	weight           decimal.Decimal
	cabinetID        kernel.CabinetID
	countryID        kernel.UUID
	flightID         *kernel.UUID
	price            kernel.Money
	status           Status
	isPaid           bool
	isDeclared       bool
	createdAt        time.Time
	lastStatusUpdate time.Time

	isConstructed bool
}

// NewOrder creates an order in Accepted status with the caller-supplied
// tracking id and the price already resolved from the tariff.
func NewOrder(
	id kernel.UUID,
	trackingID string,
	weight decimal.Decimal,
	cabinetID kernel.CabinetID,
	countryID kernel.UUID,
	flightID *kernel.UUID,
	price kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:           Accepted,
		createdAt:        now,
		lastStatusUpdate: now,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingID(trackingID),
		o.setWeight(weight),
		o.setCabinetID(cabinetID),
		o.setCountryID(countryID),
		o.setFlightID(flightID),
	); err != nil {
		return nil, err
	}

	o.price = price
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its status
// and flags.
func RestoreOrder(
	id kernel.UUID,
	trackingID string,
	weight decimal.Decimal,
	cabinetID kernel.CabinetID,
	countryID kernel.UUID,
	flightID *kernel.UUID,
	price kernel.Money,
	status Status,
	isPaid bool,
	isDeclared bool,
	createdAt time.Time,
	lastStatusUpdate time.Time,
) (*Order, error) {
	o, err := NewOrder(id, trackingID, weight, cabinetID, countryID, flightID, price, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.isPaid = isPaid
	o.isDeclared = isDeclared
	o.lastStatusUpdate = lastStatusUpdate
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingID returns the caller-supplied tracking identifier.
func (o *Order) TrackingID() string {
	return o.trackingID
}

// Weight returns the package weight.
func (o *Order) Weight() decimal.Decimal {
	return o.weight
}

// CabinetID returns the cabinet code of the owning account.
func (o *Order) CabinetID() kernel.CabinetID {
	return o.cabinetID
}

// CountryID returns the origin country reference used for pricing.
func (o *Order) CountryID() kernel.UUID {
	return o.countryID
}

// FlightID returns the assigned flight reference, or nil.
func (o *Order) FlightID() *kernel.UUID {
	return o.flightID
}

// Price returns the price fixed at creation time.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether the order has been settled.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// IsDeclared reports whether the customs declaration has been filed.
func (o *Order) IsDeclared() bool {
	return o.isDeclared
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// LastStatusUpdate returns the timestamp of the most recent status or
// declaration change.
func (o *Order) LastStatusUpdate() time.Time {
	return o.lastStatusUpdate
}

// ChangeStatus advances the order to a later lifecycle status.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.lastStatusUpdate = now
	return nil
}

// Declare marks the customs declaration as filed. The flag is one-way and
// independent of the lifecycle status; declaring twice is a no-op.
func (o *Order) Declare(now time.Time) {
	if o.isDeclared {
		return
	}
	o.isDeclared = true
	o.lastStatusUpdate = now
}

// MarkPaid flips the paid flag. Only the settlement use case calls this,
// after the owning account's balance has been debited in the same
// transaction. A second settlement attempt fails with ErrAlreadyPaid.
func (o *Order) MarkPaid() error {
	if o.isPaid {
		return ErrAlreadyPaid
	}
	o.isPaid = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingID(trackingID string) error {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}
	o.trackingID = trackingID
	return nil
}

func (o *Order) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is not greater than 0", weight.String()))
	}
	o.weight = weight
	return nil
}

func (o *Order) setCabinetID(cabinetID kernel.CabinetID) error {
	if err := cabinetID.Validate(); err != nil {
		return err
	}
	o.cabinetID = cabinetID
	return nil
}

func (o *Order) setCountryID(countryID kernel.UUID) error {
	if err := countryID.Validate(); err != nil {
		return err
	}
	o.countryID = countryID
	return nil
}

func (o *Order) setFlightID(flightID *kernel.UUID) error {
	if flightID == nil {
		return nil
	}
	if err := flightID.Validate(); err != nil {
		return err
	}
	o.flightID = flightID
	return nil
}

// Package orderrepo persists order aggregates through GORM. It maps between
// the domain model and the orders table; statuses are stored as their
// lifecycle literals, money and weight as exact numerics.
package orderrepo

import (
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database row for an order aggregate. The tracking id
// carries a unique index: it is the caller-supplied natural key, and a
// duplicate insert must fail no matter what the use case pre-checked.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingID       string          `gorm:"uniqueIndex;not null"`
	Weight           decimal.Decimal `gorm:"type:numeric;not null"`
	CabinetID        string          `gorm:"index;not null"`
	CountryID        uuid.UUID       `gorm:"type:uuid;not null"`
	FlightID         *uuid.UUID      `gorm:"type:uuid;index"`
	Price            decimal.Decimal `gorm:"type:numeric;not null"`
	Status           string          `gorm:"index;not null"`
	IsPaid           bool            `gorm:"not null"`
	IsDeclared       bool            `gorm:"not null"`
	CreatedAt        time.Time       `gorm:"index;not null"`
	LastStatusUpdate time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var flightID *uuid.UUID
	if id := aggregate.FlightID(); id != nil {
		raw := id.Bytes()
		flightID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingID:       aggregate.TrackingID(),
		Weight:           aggregate.Weight(),
		CabinetID:        aggregate.CabinetID().String(),
		CountryID:        aggregate.CountryID().Bytes(),
		FlightID:         flightID,
		Price:            aggregate.Price().Amount(),
		Status:           aggregate.Status().String(),
		IsPaid:           aggregate.IsPaid(),
		IsDeclared:       aggregate.IsDeclared(),
		CreatedAt:        aggregate.CreatedAt(),
		LastStatusUpdate: aggregate.LastStatusUpdate(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cabinetID, err := kernel.NewCabinetID(dto.CabinetID)
	if err != nil {
		return nil, err
	}

	countryID, err := kernel.UUIDFromBytes(dto.CountryID[:])
	if err != nil {
		return nil, err
	}

	var flightID *kernel.UUID
	if dto.FlightID != nil {
		fID, flightErr := kernel.UUIDFromBytes((*dto.FlightID)[:])
		if flightErr != nil {
			return nil, flightErr
		}
		flightID = &fID
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.TrackingID,
		dto.Weight,
		cabinetID,
		countryID,
		flightID,
		price,
		status,
		dto.IsPaid,
		dto.IsDeclared,
		dto.CreatedAt,
		dto.LastStatusUpdate,
	)
}

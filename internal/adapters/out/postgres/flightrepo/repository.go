// Package flightrepo persists flight records through GORM.
package flightrepo

import (
	"context"
	"errors"
	"time"

	"cargo/internal/core/domain/model/flight"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlightDTO is the database row for a flight. The flight number carries a
// unique index.
type FlightDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number        string    `gorm:"uniqueIndex;not null"`
	DepartureTime time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's default naming to use "flights".
func (FlightDTO) TableName() string {
	return "flights"
}

func fromDomain(aggregate *flight.Flight) FlightDTO {
	return FlightDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		DepartureTime: aggregate.DepartureTime(),
	}
}

func toDomain(dto FlightDTO) (*flight.Flight, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return flight.NewFlight(id, dto.Number, dto.DepartureTime)
}

// GormFlightRepository implements ports.FlightRepository using GORM.
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository.
func NewGormFlightRepository(db *gorm.DB) *GormFlightRepository {
	return &GormFlightRepository{db: db}
}

// Add saves a new flight. A duplicate number surfaces as a Conflict error
// from the unique index.
func (r *GormFlightRepository) Add(ctx context.Context, aggregate *flight.Flight) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("number", aggregate.Number(), err)
		}
		return err
	}

	return nil
}

// Get retrieves a flight by ID.
func (r *GormFlightRepository) Get(ctx context.Context, id kernel.UUID) (*flight.Flight, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FlightDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("flight", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a flight row.
func (r *GormFlightRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&FlightDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("flight", id.String())
	}

	return nil
}

package countryrepo

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/country"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCountryRepository implements ports.CountryRepository using GORM.
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GORM country repository.
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// Add saves a new country tariff. A duplicate name surfaces as a Conflict
// error from the unique index.
func (r *GormCountryRepository) Add(ctx context.Context, aggregate *country.Country) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("name", aggregate.Name(), err)
		}
		return err
	}

	return nil
}

// Get retrieves a country tariff by ID.
func (r *GormCountryRepository) Get(ctx context.Context, id kernel.UUID) (*country.Country, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CountryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("country", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a country tariff. Orders priced against it keep their
// price; only the reference row goes away.
func (r *GormCountryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CountryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("country", id.String())
	}

	return nil
}

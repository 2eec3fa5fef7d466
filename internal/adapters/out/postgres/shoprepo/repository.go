// Package shoprepo persists shop records through GORM.
package shoprepo

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/shop"
	"cargo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopDTO is the database row for a shop listing.
type ShopDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"not null"`
	CountryID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "shops".
func (ShopDTO) TableName() string {
	return "shops"
}

func fromDomain(aggregate *shop.Shop) ShopDTO {
	var countryID *uuid.UUID
	if id := aggregate.CountryID(); id != nil {
		raw := id.Bytes()
		countryID = &raw
	}

	return ShopDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		CountryID: countryID,
	}
}

// GormShopRepository implements ports.ShopRepository using GORM.
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// Add saves a new shop listing.
func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Delete removes a shop row.
func (r *GormShopRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShopDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shop", id.String())
	}

	return nil
}

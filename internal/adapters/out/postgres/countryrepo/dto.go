// Package countryrepo persists country tariff records through GORM.
package countryrepo

import (
	"cargo/internal/core/domain/model/country"
	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CountryDTO is the database row for a country tariff. The name carries a
// unique index.
type CountryDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name    string          `gorm:"uniqueIndex;not null"`
	Code    string          `gorm:"not null"`
	Address string          `gorm:"not null"`
	Rate    decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName overrides GORM's default naming to use "countries".
func (CountryDTO) TableName() string {
	return "countries"
}

func fromDomain(aggregate *country.Country) CountryDTO {
	return CountryDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Code:    aggregate.Code(),
		Address: aggregate.Address(),
		Rate:    aggregate.Rate().Amount(),
	}
}

func toDomain(dto CountryDTO) (*country.Country, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewMoney(dto.Rate)
	if err != nil {
		return nil, err
	}

	return country.NewCountry(id, dto.Name, dto.Code, dto.Address, rate)
}

package queries

import (
	"context"

	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCountriesQueryHandler lists the country tariffs for the order entry
// form and the admin reference screens.
type GetCountriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCountriesQueryHandler creates a handler for country listings.
func NewGetCountriesQueryHandler(db *gorm.DB) GetCountriesQueryHandler {
	return GetCountriesQueryHandler{db: db}
}

// Handle executes the listing, sorted by country name.
func (h GetCountriesQueryHandler) Handle(ctx context.Context, query GetCountriesQuery) ([]CountryListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]CountryListItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			code,
			address,
			rate
		FROM countries
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   uuid.UUID
			item CountryListItem
		)

		if err = rows.Scan(&id, &item.Name, &item.Code, &item.Address, &item.Rate); err != nil {
			return nil, err
		}

		countryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = countryID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

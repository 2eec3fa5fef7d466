package queries

import (
	"context"
	"database/sql"

	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShopsQueryHandler lists the shops cabinet holders can order from.
type GetShopsQueryHandler struct {
	db *gorm.DB
}

// NewGetShopsQueryHandler creates a handler for shop listings.
func NewGetShopsQueryHandler(db *gorm.DB) GetShopsQueryHandler {
	return GetShopsQueryHandler{db: db}
}

// Handle executes the listing, sorted by shop name.
func (h GetShopsQueryHandler) Handle(ctx context.Context, query GetShopsQuery) ([]ShopListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ShopListItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			c.name
		FROM shops s
		LEFT JOIN countries c ON c.id = s.country_id
		ORDER BY s.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			countryName sql.NullString
			item        ShopListItem
		)

		if err = rows.Scan(&id, &item.Name, &countryName); err != nil {
			return nil, err
		}

		shopID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = shopID
		item.CountryName = countryName.String
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

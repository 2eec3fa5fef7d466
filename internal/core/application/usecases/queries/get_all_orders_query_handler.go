package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order newest first with reference
// data joined in. Administrative use only; the transport layer gates it.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.tracking_id,
			o.weight,
			o.cabinet_id,
			o.price,
			o.status,
			o.is_paid,
			o.is_declared,
			c.name,
			c.code,
			f.number,
			o.created_at,
			o.last_status_update
		FROM orders o
		JOIN countries c ON c.id = o.country_id
		LEFT JOIN flights f ON f.id = o.flight_id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderListItems(rows)
}

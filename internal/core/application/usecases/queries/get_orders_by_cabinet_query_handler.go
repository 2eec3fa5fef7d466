package queries

import (
	"context"
	"database/sql"
	"time"

	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByCabinetQueryHandler lists one cabinet's orders newest first,
// joining the country and optional flight reference data for display.
type GetOrdersByCabinetQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCabinetQueryHandler creates a handler for cabinet order
// listings.
func NewGetOrdersByCabinetQueryHandler(db *gorm.DB) GetOrdersByCabinetQueryHandler {
	return GetOrdersByCabinetQueryHandler{db: db}
}

// Handle executes the listing. Orders are sorted by creation time, newest
// first. An empty slice means the cabinet simply has no orders yet.
func (h GetOrdersByCabinetQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCabinetQuery,
) ([]OrderListItem, error) {
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
		WHERE o.cabinet_id = ?
		ORDER BY o.created_at DESC
	`, query.CabinetID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderListItems(rows)
}

func scanOrderListItems(rows *sql.Rows) ([]OrderListItem, error) {
	items := make([]OrderListItem, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			flightNumber sql.NullString
			item         OrderListItem
			createdAt    time.Time
			statusUpdate time.Time
		)

		if err := rows.Scan(
			&id,
			&item.TrackingID,
			&item.Weight,
			&item.CabinetID,
			&item.Price,
			&item.Status,
			&item.IsPaid,
			&item.IsDeclared,
			&item.CountryName,
			&item.CountryCode,
			&flightNumber,
			&createdAt,
			&statusUpdate,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		item.ID = orderID
		item.FlightNumber = flightNumber.String
		item.CreatedAt = createdAt
		item.LastStatusUpdate = statusUpdate
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

package queries

import (
	"context"

	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFlightsQueryHandler lists flights for the order entry form and the
// admin reference screens.
type GetFlightsQueryHandler struct {
	db *gorm.DB
}

// NewGetFlightsQueryHandler creates a handler for flight listings.
func NewGetFlightsQueryHandler(db *gorm.DB) GetFlightsQueryHandler {
	return GetFlightsQueryHandler{db: db}
}

// Handle executes the listing, sorted by departure time ascending.
func (h GetFlightsQueryHandler) Handle(ctx context.Context, query GetFlightsQuery) ([]FlightListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]FlightListItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			departure_time
		FROM flights
		ORDER BY departure_time
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   uuid.UUID
			item FlightListItem
		)

		if err = rows.Scan(&id, &item.Number, &item.DepartureTime); err != nil {
			return nil, err
		}

		flightID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = flightID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

package queries

import (
	"context"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStorageOccupancyQueryHandler aggregates rack occupancy in one query.
type GetStorageOccupancyQueryHandler struct {
	db *gorm.DB
}

// NewGetStorageOccupancyQueryHandler creates a handler for rack occupancy
// queries. Requires a GORM database connection for query execution.
func NewGetStorageOccupancyQueryHandler(db *gorm.DB) GetStorageOccupancyQueryHandler {
	return GetStorageOccupancyQueryHandler{db: db}
}

// Handle executes the query. Returns one view per rack ordered by rack
// number. A stale allocation is one whose chain's main version sits in
// cancelled, damaged, or lost status.
func (h GetStorageOccupancyQueryHandler) Handle(
	ctx context.Context,
	query GetStorageOccupancyQuery,
) ([]StorageOccupancyView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.rack_number,
			s.total_capacity,
			s.used_capacity,
			s.from_range,
			s.to_range,
			COUNT(a.order_id) AS active_allocations,
			COUNT(a.order_id) FILTER (WHERE o.status IN (?, ?, ?)) AS stale_allocations
		FROM storages s
		LEFT JOIN allocations a ON a.rack_id = s.id
		LEFT JOIN orders o
			ON (o.id = a.order_id OR o.main_order_id = a.order_id)
			AND o.is_main_order = true
		GROUP BY s.id, s.rack_number, s.total_capacity, s.used_capacity, s.from_range, s.to_range
		ORDER BY s.rack_number
	`, int(order.Cancelled), int(order.Damaged), int(order.Lost)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]StorageOccupancyView, 0)

	for rows.Next() {
		var (
			rawID uuid.UUID
			view  StorageOccupancyView
		)

		err = rows.Scan(
			&rawID,
			&view.RackNumber,
			&view.TotalCapacity,
			&view.UsedCapacity,
			&view.FromRange,
			&view.ToRange,
			&view.ActiveAllocations,
			&view.StaleAllocations,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = id

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

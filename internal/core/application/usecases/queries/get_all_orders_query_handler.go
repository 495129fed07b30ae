package queries

import (
	"context"

	"laundromat/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists the main versions of all order chains.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns enriched views with history attached,
// newest chains first.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE is_main_order = true
	`
	args := make([]any, 0, 1)

	if !query.IncludeDelivered() {
		sql += ` AND status <> ?`
		args = append(args, int(order.Delivered))
	}

	sql += ` ORDER BY created_at DESC`

	rows, err := queryOrderRows(ctx, h.db, sql, args...)
	if err != nil {
		return nil, err
	}

	return buildOrderViews(ctx, h.db, rows, true)
}

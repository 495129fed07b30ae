package queries

import (
	"context"

	"laundromat/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler lists a customer's order chains.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer order
// listing queries. Requires a GORM database connection for query execution.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the query. Returns enriched main versions with history,
// newest chains first. Delivered chains are hidden unless the filters
// include them or select them by status.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE is_main_order = true AND customer_id = ?
	`
	args := []any{query.CustomerID().Bytes()}

	filters := query.Filters()
	switch {
	case filters.Status != nil:
		sql += ` AND status = ?`
		args = append(args, int(*filters.Status))
	case !filters.IncludeDelivered:
		sql += ` AND status <> ?`
		args = append(args, int(order.Delivered))
	}
	if filters.OrderType != nil {
		sql += ` AND order_type = ?`
		args = append(args, int(*filters.OrderType))
	}

	sql += ` ORDER BY created_at DESC`

	rows, err := queryOrderRows(ctx, h.db, sql, args...)
	if err != nil {
		return nil, err
	}

	return buildOrderViews(ctx, h.db, rows, true)
}

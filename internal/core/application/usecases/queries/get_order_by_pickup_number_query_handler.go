package queries

import (
	"context"

	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByPickupNumberQueryHandler resolves a pickup number to the
// enriched main version of the chain that currently holds it.
type GetOrderByPickupNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByPickupNumberQueryHandler creates a handler for pickup number
// lookups. Requires a GORM database connection for query execution.
func NewGetOrderByPickupNumberQueryHandler(db *gorm.DB) GetOrderByPickupNumberQueryHandler {
	return GetOrderByPickupNumberQueryHandler{db: db}
}

// Handle executes the query. When delivered chains are excluded and numbers
// have been recycled, the newest matching chain wins.
func (h GetOrderByPickupNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByPickupNumberQuery,
) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE is_main_order = true AND pickup_number = ?
	`
	args := []any{query.PickupNumber()}

	if !query.IncludeDelivered() {
		sql += ` AND status <> ?`
		args = append(args, int(order.Delivered))
	}

	sql += ` ORDER BY created_at DESC LIMIT 1`

	rows, err := queryOrderRows(ctx, h.db, sql, args...)
	if err != nil {
		return OrderView{}, err
	}
	if len(rows) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("pickupNumber", query.PickupNumber())
	}

	views, err := buildOrderViews(ctx, h.db, rows, true)
	if err != nil {
		return OrderView{}, err
	}

	return views[0], nil
}

package queries

import (
	"context"

	"laundromat/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler resolves an order chain to its enriched main
// version. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query.
//
// The given id may reference any version of the chain; the handler resolves
// the chain's original id first and then selects the row flagged main.
// Returns ObjectNotFoundError when no version row carries the id, and
// VersionIsInvalidError when the chain exists but has no main version.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	anchor, err := queryOrderRows(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}
	if len(anchor) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	originalID := anchor[0].originalID()

	mainRows, err := queryOrderRows(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE (id = ? OR main_order_id = ?) AND is_main_order = true
	`, originalID, originalID)
	if err != nil {
		return OrderView{}, err
	}
	if len(mainRows) == 0 {
		return OrderView{}, errs.NewVersionIsInvalidError("order chain has no main version")
	}

	views, err := buildOrderViews(ctx, h.db, mainRows[:1], true)
	if err != nil {
		return OrderView{}, err
	}

	return views[0], nil
}

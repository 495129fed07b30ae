// Package ports defines repository interfaces for the laundromat domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
)

// ItemLink is the join record binding an order version to one of its
// underlying item rows. The item type mirrors the order type; links are
// re-pointed (not duplicated) when a new order version is created.
type ItemLink struct {
	ItemType order.Type
	ItemID   kernel.UUID
}

// OrderRepository defines the persistence contract for order version rows
// and their item links.
//
// An order is a version chain: the repository stores individual version rows
// and resolves chains through the mainOrderID reference. Writes that touch a
// chain's main flag must be executed inside the caller's unit of work.
type OrderRepository interface {
	// Add persists a new order version row.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing version row.
	// Used for storage assignment during creation and for flag flips.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a single version row by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMain resolves the chain containing id and returns its current main
	// version. id may reference any version in the chain. Returns a
	// VersionIsInvalidError when the chain exists but carries no main row.
	GetMain(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetChainVersions retrieves every version row of the chain rooted at
	// originalID (the original row plus all edits), newest first.
	GetChainVersions(ctx context.Context, originalID kernel.UUID) ([]*order.Order, error)

	// MarkChainSuperseded flips isMainOrder off on every version of the
	// chain rooted at originalID. Defensive against data skew: it clears
	// any stray main flags, not only the expected one.
	MarkChainSuperseded(ctx context.Context, originalID kernel.UUID) error

	// Delete removes a single version row. Deleting a missing row is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error

	// AddItemLinks binds an order version to its underlying item rows.
	AddItemLinks(ctx context.Context, orderID kernel.UUID, links []ItemLink) error

	// GetItemLinks retrieves the item links of one order version.
	GetItemLinks(ctx context.Context, orderID kernel.UUID) ([]ItemLink, error)

	// GetItemLinksForOrders retrieves item links for a batch of order
	// versions, grouped by order id. Used by the read-path enrichment.
	GetItemLinksForOrders(ctx context.Context, orderIDs []kernel.UUID) (map[kernel.UUID][]ItemLink, error)

	// DeleteItemLinks removes all item links of one order version.
	// Missing links are a no-op.
	DeleteItemLinks(ctx context.Context, orderID kernel.UUID) error
}

package ports

import (
	"context"

	"laundromat/internal/core/domain/model/item"
	"laundromat/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for the two garment-item
// shapes. Item rows are immutable once created; there is no update operation.
type ItemRepository interface {
	// AddPressing persists a new pressing item row.
	AddPressing(ctx context.Context, it *item.PressingItem) error

	// AddCleaning persists a new cleaning item row.
	AddCleaning(ctx context.Context, it *item.CleaningItem) error

	// GetPressing retrieves one pressing item by id.
	GetPressing(ctx context.Context, id kernel.UUID) (*item.PressingItem, error)

	// GetCleaning retrieves one cleaning item by id.
	GetCleaning(ctx context.Context, id kernel.UUID) (*item.CleaningItem, error)

	// GetPressingByIDs retrieves a batch of pressing items in one query.
	// Missing ids are silently absent from the result.
	GetPressingByIDs(ctx context.Context, ids []kernel.UUID) ([]*item.PressingItem, error)

	// GetCleaningByIDs retrieves a batch of cleaning items in one query.
	// Missing ids are silently absent from the result.
	GetCleaningByIDs(ctx context.Context, ids []kernel.UUID) ([]*item.CleaningItem, error)

	// DeletePressing removes a pressing item row. Deleting a missing row is
	// a no-op; callers use this for best-effort cleanup.
	DeletePressing(ctx context.Context, id kernel.UUID) error

	// DeleteCleaning removes a cleaning item row. Deleting a missing row is
	// a no-op.
	DeleteCleaning(ctx context.Context, id kernel.UUID) error
}

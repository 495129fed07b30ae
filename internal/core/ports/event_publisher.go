package ports

import (
	"context"
	"time"

	"laundromat/internal/core/domain/model/kernel"
)

// OrderChangedEvent is emitted after a committed change to an order chain:
// creation, a new version, a status change or a deletion.
type OrderChangedEvent struct {
	// OrderID is the id of the concrete version the change produced.
	OrderID kernel.UUID

	// OriginalID is the stable id of the version chain.
	OriginalID kernel.UUID

	// Action names the change: created, updated, deleted.
	Action string

	// Status is the order status after the change, empty for deletions.
	Status string

	// PickupNumber is the customer-facing number of the chain.
	PickupNumber int

	// OccurredAt is the wall-clock time the change was committed.
	OccurredAt time.Time
}

// OrderEventPublisher delivers order change notifications to downstream
// consumers. Publishing happens after commit; failures are logged and do not
// fail the originating operation.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}

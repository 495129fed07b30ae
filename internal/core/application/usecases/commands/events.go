package commands

import (
	"context"
	"time"

	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/core/ports"
)

// Event actions published by the order command handlers.
const (
	orderCreatedAction = "created"
	orderUpdatedAction = "updated"
	orderDeletedAction = "deleted"
)

// publishOrderChanged notifies downstream consumers about a committed order
// change. Called strictly after Commit; failures are the publisher's problem
// (implementations log them) and never fail the originating command.
func publishOrderChanged(ctx context.Context, publisher ports.OrderEventPublisher, o *order.Order, action string) {
	status := ""
	if action != orderDeletedAction {
		status = o.Status().String()
	}

	_ = publisher.PublishOrderChanged(ctx, ports.OrderChangedEvent{
		OrderID:      o.ID(),
		OriginalID:   o.OriginalID(),
		Action:       action,
		Status:       status,
		PickupNumber: o.PickupNumber(),
		OccurredAt:   time.Now().UTC(),
	})
}

package commands

import (
	"context"

	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/core/ports"
)

// DeleteOrderCommandHandler handles the business logic for order deletion.
// Releases the chain's storage allocation if the order was never delivered,
// then removes the item links, the underlying item rows, and the targeted
// version row. Cleanup is tolerant: already-gone rows never fail the command.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order deletion command.
//
// Only the targeted version row is deleted, not the whole chain; callers
// operate on the main version. The release step is best-effort: a failure
// there is ignored and the deletion proceeds.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !target.IsReleased() {
		_ = releaseStorage(ctx, uow, target.OriginalID())
	}

	links, err := orderRepo.GetItemLinks(ctx, target.ID())
	if err != nil {
		return err
	}

	if err = orderRepo.DeleteItemLinks(ctx, target.ID()); err != nil {
		return err
	}

	if err = deleteItems(ctx, uow, links); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, target, orderDeletedAction)

	return nil
}

// deleteItems removes the underlying item rows behind the links. Item rows
// are shared across a chain's versions, so a row already removed by an
// earlier deletion is silently skipped.
func deleteItems(ctx context.Context, uow UoW, links []ports.ItemLink) error {
	itemRepo := uow.ItemRepository()

	for _, link := range links {
		switch link.ItemType {
		case order.Pressing:
			if err := itemRepo.DeletePressing(ctx, link.ItemID); err != nil {
				return err
			}
		case order.Cleaning:
			if err := itemRepo.DeleteCleaning(ctx, link.ItemID); err != nil {
				return err
			}
		}
	}

	return nil
}

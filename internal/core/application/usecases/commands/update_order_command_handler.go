package commands

import (
	"context"

	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/core/ports"
)

// UpdateOrderCommandHandler handles the business logic for order updates.
// Orders are never edited in place: every update resolves the chain's main
// version, appends a fresh version row carrying the patched fields, and
// re-links it to the same item rows. A transition into Delivered releases
// the chain's storage allocation before the new version is written.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such order")
//	case errors.Is(err, order.ErrTypeChangeNotAllowed):
//	    log.Println("Order type is immutable")
//	case err != nil:
//	    log.Printf("Update failed: %v", err)
//	}
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order update command.
//
// The flag flip on the old main version and the insert of the new one happen
// inside one transaction, so the chain never shows zero or two main versions.
// MarkChainSuperseded clears every main flag in the chain, not only the
// expected one, healing any earlier data skew.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	mainOrder, err := orderRepo.GetMain(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	patch := cmd.Patch()
	if patch.OrderType != nil && *patch.OrderType != mainOrder.OrderType() {
		return order.ErrTypeChangeNotAllowed
	}

	if patch.Status != nil && patch.Status.IsReleased() && !mainOrder.IsReleased() {
		if err = releaseStorage(ctx, uow, mainOrder.OriginalID()); err != nil {
			return err
		}
	}

	nextVersion, err := mainOrder.NewVersion(cmd.NewVersionID(), cmd.UpdatedBy())
	if err != nil {
		return err
	}

	if err = applyPatch(nextVersion, patch); err != nil {
		return err
	}

	if err = orderRepo.MarkChainSuperseded(ctx, mainOrder.OriginalID()); err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, nextVersion); err != nil {
		return err
	}

	links, err := orderRepo.GetItemLinks(ctx, mainOrder.ID())
	if err != nil {
		return err
	}

	if err = orderRepo.AddItemLinks(ctx, nextVersion.ID(), links); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, nextVersion, orderUpdatedAction)

	return nil
}

// applyPatch applies the non-nil patch fields to the appended version.
func applyPatch(o *order.Order, patch OrderPatch) error {
	if patch.CustomerID != nil {
		if err := o.ChangeCustomer(*patch.CustomerID); err != nil {
			return err
		}
	}

	if patch.PaymentMethod != nil {
		if err := o.ChangePaymentMethod(*patch.PaymentMethod); err != nil {
			return err
		}
	}

	if patch.PaymentStatus != nil {
		if err := o.ChangePaymentStatus(*patch.PaymentStatus); err != nil {
			return err
		}
	}

	if patch.AmountPaid != nil {
		if err := o.RecordPayment(*patch.AmountPaid); err != nil {
			return err
		}
	}

	if patch.Status != nil {
		if err := o.ChangeStatus(*patch.Status); err != nil {
			return err
		}
	}

	return nil
}

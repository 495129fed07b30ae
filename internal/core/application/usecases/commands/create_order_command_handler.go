package commands

import (
	"context"

	"laundromat/internal/core/domain/model/item"
	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/core/domain/model/storage"
	"laundromat/internal/core/domain/services"
	"laundromat/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the item rows, prices the order, allocates a rack and pickup
// number (unless an administrative ticket number bypasses allocation), and
// links the order version to its items, all inside one transaction, so a
// failed allocation leaves no orphan order or item rows.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now stored with its pickup number assigned
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence and a publisher for
// post-commit change notifications.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
//
// The order row is first inserted without a pickup number, then updated with
// the allocator's (rack, number) pair inside the same transaction; rollback
// on any step removes the placeholder. The administrative path (explicit
// ticket number) skips allocation entirely and keeps a nil rack reference.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	links, total, count, err := createItems(ctx, uow, cmd)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderType(),
		cmd.CustomerID(),
		cmd.PaymentMethod(),
		cmd.PaymentStatus(),
		total,
		cmd.AmountPaid(),
		cmd.CreatedBy(),
	)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	if cmd.TicketNumber() > 0 {
		if err = newOrder.AssignTicketNumber(cmd.TicketNumber()); err != nil {
			return err
		}
		if err = orderRepo.Add(ctx, newOrder); err != nil {
			return err
		}
	} else {
		if err = orderRepo.Add(ctx, newOrder); err != nil {
			return err
		}
		if err = allocateStorage(ctx, uow, newOrder, count); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, newOrder); err != nil {
			return err
		}
	}

	if err = orderRepo.AddItemLinks(ctx, newOrder.ID(), links); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, newOrder, orderCreatedAction)

	return nil
}

// createItems persists the type-shaped item rows and returns the links to
// bind to the order, the priced total, and the garment count for allocation.
func createItems(ctx context.Context, uow UoW, cmd CreateOrderCommand) ([]ports.ItemLink, int, int, error) {
	itemRepo := uow.ItemRepository()

	if cmd.OrderType() == order.Pressing {
		quantity := cmd.PressingQuantity()
		total := services.PressingTotal(quantity)

		pressingItem, err := item.NewPressingItem(kernel.NewUUID(), quantity, total)
		if err != nil {
			return nil, 0, 0, err
		}
		if err = itemRepo.AddPressing(ctx, pressingItem); err != nil {
			return nil, 0, 0, err
		}

		links := []ports.ItemLink{{ItemType: order.Pressing, ItemID: pressingItem.ID()}}
		return links, total, services.PressingGarmentCount(quantity), nil
	}

	pricingLines := make([]services.CleaningLine, 0, len(cmd.CleaningLines()))
	links := make([]ports.ItemLink, 0, len(cmd.CleaningLines()))

	for _, line := range cmd.CleaningLines() {
		cleaningItem, err := item.NewCleaningItem(
			kernel.NewUUID(),
			line.Name,
			line.Quantity,
			line.UnitPrice*line.Quantity,
		)
		if err != nil {
			return nil, 0, 0, err
		}
		if err = itemRepo.AddCleaning(ctx, cleaningItem); err != nil {
			return nil, 0, 0, err
		}

		pricingLines = append(pricingLines, services.CleaningLine{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
		links = append(links, ports.ItemLink{ItemType: order.Cleaning, ItemID: cleaningItem.ID()})
	}

	return links, services.CleaningTotal(pricingLines), services.CleaningGarmentCount(pricingLines), nil
}

// allocateStorage runs the storage allocator against the locked rack set and
// records the result: the rack's new usage, the active allocation row (keyed
// by the chain's original id), and the order's (rack, number) assignment.
func allocateStorage(ctx context.Context, uow UoW, o *order.Order, count int) error {
	storageRepo := uow.StorageRepository()

	racks, err := storageRepo.GetRacksForAllocation(ctx)
	if err != nil {
		return err
	}

	occupied, err := storageRepo.GetActiveNumbers(ctx)
	if err != nil {
		return err
	}

	rack, number, err := services.NewStorageAllocator().Allocate(racks, occupied, count)
	if err != nil {
		return err
	}

	if err = storageRepo.UpdateRack(ctx, rack); err != nil {
		return err
	}

	allocation, err := storage.NewAllocation(number, o.OriginalID(), rack.ID())
	if err != nil {
		return err
	}
	if err = storageRepo.AddAllocation(ctx, allocation); err != nil {
		return err
	}

	return o.AssignStorage(rack.ID(), number)
}

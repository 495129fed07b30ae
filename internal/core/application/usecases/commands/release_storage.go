package commands

import (
	"context"
	"errors"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/pkg/errs"
)

// releaseStorage frees the rack capacity and pickup number held by an order
// chain, keyed by the chain's stable original id. The garment count is
// re-derived from the linked item rows rather than trusting a cached value.
//
// Idempotent: a chain without an active allocation (administrative ticket
// orders, or a chain released earlier) is a no-op. Must run inside the
// caller's open transaction.
func releaseStorage(ctx context.Context, uow UoW, originalID kernel.UUID) error {
	storageRepo := uow.StorageRepository()

	allocation, err := storageRepo.GetAllocationByOrder(ctx, originalID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	rack, err := storageRepo.GetRackForUpdate(ctx, allocation.RackID())
	if err != nil {
		return err
	}

	count, err := garmentCount(ctx, uow, originalID)
	if err != nil {
		return err
	}

	if err = rack.Release(count); err != nil {
		return err
	}

	if err = storageRepo.UpdateRack(ctx, rack); err != nil {
		return err
	}

	return storageRepo.DeleteAllocation(ctx, originalID)
}

// garmentCount sums the garment units held by an order version's linked item
// rows: the pressing quantity for pressing links, the sum of line quantities
// for cleaning links.
func garmentCount(ctx context.Context, uow UoW, orderID kernel.UUID) (int, error) {
	links, err := uow.OrderRepository().GetItemLinks(ctx, orderID)
	if err != nil {
		return 0, err
	}

	var pressingIDs, cleaningIDs []kernel.UUID
	for _, link := range links {
		switch link.ItemType {
		case order.Pressing:
			pressingIDs = append(pressingIDs, link.ItemID)
		case order.Cleaning:
			cleaningIDs = append(cleaningIDs, link.ItemID)
		}
	}

	itemRepo := uow.ItemRepository()
	count := 0

	if len(pressingIDs) > 0 {
		pressingItems, err := itemRepo.GetPressingByIDs(ctx, pressingIDs)
		if err != nil {
			return 0, err
		}
		for _, it := range pressingItems {
			count += it.Quantity()
		}
	}

	if len(cleaningIDs) > 0 {
		cleaningItems, err := itemRepo.GetCleaningByIDs(ctx, cleaningIDs)
		if err != nil {
			return 0, err
		}
		for _, it := range cleaningItems {
			count += it.Quantity()
		}
	}

	return count, nil
}

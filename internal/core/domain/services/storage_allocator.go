package services

import (
	"errors"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/storage"
)

var (
	// ErrNoCapacityAvailable is returned when no rack has enough free capacity
	// for the requested garment count.
	ErrNoCapacityAvailable = errors.New("no storage capacity available")

	// ErrNoNumberAvailable is returned when the selected rack's pickup-number
	// range is exhausted.
	ErrNoNumberAvailable = errors.New("no pickup number available")
)

// StorageAllocator is a domain service that selects a rack and a pickup
// number for an incoming order.
//
// The allocator itself is pure: it operates on racks and occupied-number sets
// the caller loaded inside a transaction, and mutates only the selected
// rack's in-memory capacity counter. The surrounding unit of work must hold
// row locks on the racks for the selection to be race-free; two concurrent
// transactions scanning the same free numbers would otherwise pick the same
// one (a unique index on (rack, number) backstops that assumption).
//
// Selection rules:
//   - racks are considered in ascending used-capacity order (prefer emptier
//     racks, balancing load across the room)
//   - the first rack that fits the garment count wins
//   - within the winning rack's reserved range, the lowest unoccupied
//     number is taken
//
// Example usage:
//
//	allocator := services.NewStorageAllocator()
//	rack, number, err := allocator.Allocate(racks, occupied, garmentCount)
//	if errors.Is(err, services.ErrNoCapacityAvailable) {
//	    // every rack is full
//	}
type StorageAllocator struct{}

// NewStorageAllocator creates a new StorageAllocator instance.
func NewStorageAllocator() StorageAllocator {
	return StorageAllocator{}
}

// Allocate picks a rack and pickup number for garmentCount garment units and
// occupies the chosen rack's capacity in memory.
//
// Parameters:
//   - racks: candidate racks, already ordered by ascending used capacity
//   - occupied: the active pickup numbers per rack id
//   - garmentCount: units to store (must be positive)
//
// Returns:
//   - the selected rack (its UsedCapacity already incremented) and number
//   - ErrNoCapacityAvailable if no rack fits the count
//   - ErrNoNumberAvailable if the fitting rack's range is exhausted
//
// The caller persists the rack update and inserts the allocation row inside
// the same transaction that loaded the inputs.
func (a StorageAllocator) Allocate(
	racks []*storage.Rack,
	occupied map[kernel.UUID]map[int]struct{},
	garmentCount int,
) (*storage.Rack, int, error) {
	selected, err := a.selectRack(racks, garmentCount)
	if err != nil {
		return nil, 0, err
	}

	number, err := a.firstFreeNumber(selected, occupied[selected.ID()])
	if err != nil {
		return nil, 0, err
	}

	if err := selected.Occupy(garmentCount); err != nil {
		return nil, 0, err
	}

	return selected, number, nil
}

// selectRack returns the first rack that fits the garment count.
// Racks are assumed pre-sorted by ascending used capacity.
func (a StorageAllocator) selectRack(racks []*storage.Rack, garmentCount int) (*storage.Rack, error) {
	if garmentCount <= 0 {
		return nil, ErrNoCapacityAvailable
	}

	for _, rack := range racks {
		if err := rack.Validate(); err != nil {
			return nil, err
		}
		if rack.CanFit(garmentCount) {
			return rack, nil
		}
	}

	return nil, ErrNoCapacityAvailable
}

// firstFreeNumber scans the rack's reserved range ascending for the first
// number absent from the occupied set.
func (a StorageAllocator) firstFreeNumber(rack *storage.Rack, occupied map[int]struct{}) (int, error) {
	for number := rack.FromRange(); number <= rack.ToRange(); number++ {
		if _, taken := occupied[number]; !taken {
			return number, nil
		}
	}

	return 0, ErrNoNumberAvailable
}

package ports

import (
	"context"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/storage"
)

// StorageRepository defines the persistence contract for racks and active
// pickup-number allocations.
//
// The allocate/release flows are check-then-act sequences over shared
// counters, so the read methods used by those flows take row locks; they are
// only meaningful inside an open unit-of-work transaction.
type StorageRepository interface {
	// AddRack persists a new rack. Used by bootstrap seeding.
	AddRack(ctx context.Context, rack *storage.Rack) error

	// GetRack retrieves a rack by id without locking.
	GetRack(ctx context.Context, id kernel.UUID) (*storage.Rack, error)

	// GetRackForUpdate retrieves a rack by id while holding a row lock for
	// the rest of the transaction.
	GetRackForUpdate(ctx context.Context, id kernel.UUID) (*storage.Rack, error)

	// GetAllRacks retrieves every rack ordered by rack number, unlocked.
	GetAllRacks(ctx context.Context) ([]*storage.Rack, error)

	// GetRacksForAllocation retrieves every rack ordered by ascending used
	// capacity while holding row locks, serializing concurrent allocators.
	GetRacksForAllocation(ctx context.Context) ([]*storage.Rack, error)

	// UpdateRack persists a rack's capacity counters.
	UpdateRack(ctx context.Context, rack *storage.Rack) error

	// GetActiveNumbers retrieves every active pickup number grouped by rack.
	GetActiveNumbers(ctx context.Context) (map[kernel.UUID]map[int]struct{}, error)

	// AddAllocation inserts an active allocation row. A duplicate
	// (rack, number) pair surfaces as storage-layer conflict error.
	AddAllocation(ctx context.Context, allocation *storage.Allocation) error

	// GetAllocationByOrder retrieves the active allocation of an order
	// chain, keyed by the chain's original id. Returns an
	// ObjectNotFoundError when the order holds no active allocation.
	GetAllocationByOrder(ctx context.Context, orderID kernel.UUID) (*storage.Allocation, error)

	// DeleteAllocation removes an order chain's active allocation.
	// Deleting a missing allocation is a no-op.
	DeleteAllocation(ctx context.Context, orderID kernel.UUID) error
}

package queries

import (
	"errors"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/pkg/guard"
)

var ErrGetStorageOccupancyQueryIsNotConstructed = errors.New(
	"GetStorageOccupancyQuery must be created via NewGetStorageOccupancyQuery constructor",
)

// GetStorageOccupancyQuery retrieves the occupancy of every rack: capacity
// counters, active allocations, and how many of those allocations belong to
// chains parked in cancelled, damaged, or lost status. Those stale
// allocations keep holding capacity until the order is delivered or deleted,
// which is exactly why operators want them surfaced.
type GetStorageOccupancyQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStorageOccupancyQuery creates a query to inspect rack occupancy.
// This is a parameterless query that covers every rack.
func NewGetStorageOccupancyQuery() GetStorageOccupancyQuery {
	return GetStorageOccupancyQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStorageOccupancyQueryIsNotConstructed if validation fails.
func (q GetStorageOccupancyQuery) Validate() error {
	return q.guard.Validate(ErrGetStorageOccupancyQueryIsNotConstructed)
}

// StorageOccupancyView is the per-rack occupancy read model.
type StorageOccupancyView struct {
	ID                kernel.UUID
	RackNumber        int
	TotalCapacity     int
	UsedCapacity      int
	FromRange         int
	ToRange           int
	ActiveAllocations int
	StaleAllocations  int
}

// Package storagerepo provides data transfer objects and mapping functions
// for rack and allocation persistence. The rack rows carry the capacity
// counters the allocator serializes on; the allocations table holds the
// active pickup numbers and backstops the allocator's scan with a unique
// (rack, number) index.
package storagerepo

import (
	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/storage"

	"github.com/google/uuid"
)

// StorageDTO represents the database structure for persisting racks.
type StorageDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RackNumber    int       `gorm:"uniqueIndex;not null"`
	TotalCapacity int       `gorm:"not null"`
	UsedCapacity  int       `gorm:"not null"`
	FromRange     int       `gorm:"not null"`
	ToRange       int       `gorm:"not null"`
}

// TableName specifies the database table name for racks.
func (StorageDTO) TableName() string {
	return "storages"
}

// AllocationDTO represents an active pickup-number claim. Keyed by the order
// chain's original id; the unique (rack, number) index makes two concurrent
// transactions claiming the same number impossible to commit.
type AllocationDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	RackID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_rack_pickup_number;not null"`
	PickupNumber int       `gorm:"uniqueIndex:idx_rack_pickup_number;not null"`
}

// TableName specifies the database table name for active allocations.
func (AllocationDTO) TableName() string {
	return "allocations"
}

func rackFromDomain(rack *storage.Rack) StorageDTO {
	return StorageDTO{
		ID:            rack.ID().Bytes(),
		RackNumber:    rack.RackNumber(),
		TotalCapacity: rack.TotalCapacity(),
		UsedCapacity:  rack.UsedCapacity(),
		FromRange:     rack.FromRange(),
		ToRange:       rack.ToRange(),
	}
}

func rackToDomain(dto StorageDTO) (*storage.Rack, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return storage.RestoreRack(id, dto.RackNumber, dto.TotalCapacity, dto.UsedCapacity, dto.FromRange, dto.ToRange)
}

func allocationFromDomain(allocation *storage.Allocation) AllocationDTO {
	return AllocationDTO{
		OrderID:      allocation.OrderID().Bytes(),
		RackID:       allocation.RackID().Bytes(),
		PickupNumber: allocation.PickupNumber(),
	}
}

func allocationToDomain(dto AllocationDTO) (*storage.Allocation, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	rackID, err := kernel.UUIDFromBytes(dto.RackID[:])
	if err != nil {
		return nil, err
	}

	return storage.NewAllocation(dto.PickupNumber, orderID, rackID)
}

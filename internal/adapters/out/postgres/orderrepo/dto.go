// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for order version chains, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order versions.
// Each row is one version of a chain; the chain is resolved through
// MainOrderID. Indexed for the hot lookups: chain resolution, pickup number
// claims, and per-customer listings.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderType     int        `gorm:"not null"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	PaymentMethod int        `gorm:"not null"`
	PaymentStatus int        `gorm:"not null"`
	Status        int        `gorm:"not null"`
	Total         int        `gorm:"not null"`
	AmountPaid    int        `gorm:"not null"`
	PickupNumber  int        `gorm:"index;not null"`
	StorageID     *uuid.UUID `gorm:"type:uuid"`
	MainOrderID   *uuid.UUID `gorm:"type:uuid;index"`
	IsMainOrder   bool       `gorm:"not null"`
	CreatedBy     uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt     time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for order versions.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the join row binding an order version to one of its item
// rows. Versions of one chain point at the same item rows, so the pair
// (order, item) is the natural key.
type OrderItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemType int       `gorm:"not null"`
}

// TableName specifies the database table name for order-item links.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain entity to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var storageID *uuid.UUID
	if id := aggregate.StorageID(); id != nil {
		raw := id.Bytes()
		storageID = &raw
	}

	var mainOrderID *uuid.UUID
	if id := aggregate.MainOrderID(); id != nil {
		raw := id.Bytes()
		mainOrderID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderType:     int(aggregate.OrderType()),
		CustomerID:    aggregate.CustomerID().Bytes(),
		PaymentMethod: int(aggregate.PaymentMethod()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		Status:        int(aggregate.Status()),
		Total:         aggregate.Total(),
		AmountPaid:    aggregate.AmountPaid(),
		PickupNumber:  aggregate.PickupNumber(),
		StorageID:     storageID,
		MainOrderID:   mainOrderID,
		IsMainOrder:   aggregate.IsMainOrder(),
		CreatedBy:     aggregate.CreatedBy().Bytes(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain entity.
// Reconstructs the complete version row including chain bookkeeping using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var storageID *kernel.UUID
	if dto.StorageID != nil {
		sID, storageErr := kernel.UUIDFromBytes((*dto.StorageID)[:])
		if storageErr != nil {
			return nil, storageErr
		}
		storageID = &sID
	}

	var mainOrderID *kernel.UUID
	if dto.MainOrderID != nil {
		mID, mainErr := kernel.UUIDFromBytes((*dto.MainOrderID)[:])
		if mainErr != nil {
			return nil, mainErr
		}
		mainOrderID = &mID
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.OrderType),
		customerID,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status),
		dto.Total,
		dto.AmountPaid,
		dto.PickupNumber,
		storageID,
		mainOrderID,
		dto.IsMainOrder,
		createdBy,
		dto.CreatedAt,
	)
}

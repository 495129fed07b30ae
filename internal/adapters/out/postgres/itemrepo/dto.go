// Package itemrepo provides data transfer objects and mapping functions for
// garment item persistence. Pressing and cleaning items live in separate
// tables matching their separate domain shapes.
package itemrepo

import (
	"laundromat/internal/core/domain/model/item"
	"laundromat/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PressingItemDTO represents the database structure for pressing item rows.
type PressingItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int       `gorm:"not null"`
	Total    int       `gorm:"not null"`
}

// TableName specifies the database table name for pressing items.
func (PressingItemDTO) TableName() string {
	return "pressing_items"
}

// CleaningItemDTO represents the database structure for cleaning item rows.
type CleaningItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null"`
	Quantity int       `gorm:"not null"`
	Total    int       `gorm:"not null"`
}

// TableName specifies the database table name for cleaning items.
func (CleaningItemDTO) TableName() string {
	return "cleaning_items"
}

func pressingFromDomain(it *item.PressingItem) PressingItemDTO {
	return PressingItemDTO{
		ID:       it.ID().Bytes(),
		Quantity: it.Quantity(),
		Total:    it.Total(),
	}
}

func pressingToDomain(dto PressingItemDTO) (*item.PressingItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.NewPressingItem(id, dto.Quantity, dto.Total)
}

func cleaningFromDomain(it *item.CleaningItem) CleaningItemDTO {
	return CleaningItemDTO{
		ID:       it.ID().Bytes(),
		Name:     it.Name(),
		Quantity: it.Quantity(),
		Total:    it.Total(),
	}
}

func cleaningToDomain(dto CleaningItemDTO) (*item.CleaningItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.NewCleaningItem(id, dto.Name, dto.Quantity, dto.Total)
}

package itemrepo

import (
	"context"
	"errors"

	"laundromat/internal/core/domain/model/item"
	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// AddPressing saves a new pressing item row to the database.
func (r *GormItemRepository) AddPressing(ctx context.Context, it *item.PressingItem) error {
	if err := it.Validate(); err != nil {
		return err
	}

	dto := pressingFromDomain(it)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddCleaning saves a new cleaning item row to the database.
func (r *GormItemRepository) AddCleaning(ctx context.Context, it *item.CleaningItem) error {
	if err := it.Validate(); err != nil {
		return err
	}

	dto := cleaningFromDomain(it)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPressing retrieves one pressing item by id.
func (r *GormItemRepository) GetPressing(ctx context.Context, id kernel.UUID) (*item.PressingItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PressingItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pressingItem", id.String())
		}
		return nil, err
	}

	return pressingToDomain(dto)
}

// GetCleaning retrieves one cleaning item by id.
func (r *GormItemRepository) GetCleaning(ctx context.Context, id kernel.UUID) (*item.CleaningItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CleaningItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cleaningItem", id.String())
		}
		return nil, err
	}

	return cleaningToDomain(dto)
}

// GetPressingByIDs retrieves a batch of pressing items in one query.
// Missing ids are silently absent from the result.
func (r *GormItemRepository) GetPressingByIDs(ctx context.Context, ids []kernel.UUID) ([]*item.PressingItem, error) {
	raw, err := rawIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []*item.PressingItem{}, nil
	}

	var dtos []PressingItemDTO
	if err = r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make([]*item.PressingItem, 0, len(dtos))
	for _, dto := range dtos {
		it, domainErr := pressingToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		items = append(items, it)
	}

	return items, nil
}

// GetCleaningByIDs retrieves a batch of cleaning items in one query.
// Missing ids are silently absent from the result.
func (r *GormItemRepository) GetCleaningByIDs(ctx context.Context, ids []kernel.UUID) ([]*item.CleaningItem, error) {
	raw, err := rawIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []*item.CleaningItem{}, nil
	}

	var dtos []CleaningItemDTO
	if err = r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make([]*item.CleaningItem, 0, len(dtos))
	for _, dto := range dtos {
		it, domainErr := cleaningToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		items = append(items, it)
	}

	return items, nil
}

// DeletePressing removes a pressing item row. Missing rows are a no-op.
func (r *GormItemRepository) DeletePressing(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&PressingItemDTO{}, "id = ?", id.Bytes()).Error
}

// DeleteCleaning removes a cleaning item row. Missing rows are a no-op.
func (r *GormItemRepository) DeleteCleaning(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CleaningItemDTO{}, "id = ?", id.Bytes()).Error
}

func rawIDs(ids []kernel.UUID) ([]uuid.UUID, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}
	return raw, nil
}

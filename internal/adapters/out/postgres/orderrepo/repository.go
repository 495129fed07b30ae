package orderrepo

import (
	"context"
	"errors"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/core/ports"
	"laundromat/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order version row to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order version row to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") so false flags and cleared references are written too
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order version row by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMain resolves the chain containing id and retrieves its main version.
func (r *GormOrderRepository) GetMain(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	anchor, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if anchor.IsMainOrder() {
		return anchor, nil
	}

	originalID := anchor.OriginalID().Bytes()

	var dto OrderDTO
	err = r.db.WithContext(ctx).
		First(&dto, "(id = ? OR main_order_id = ?) AND is_main_order = true", originalID, originalID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewVersionIsInvalidError("order chain has no main version")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetChainVersions retrieves every version row of a chain, newest first.
func (r *GormOrderRepository) GetChainVersions(ctx context.Context, originalID kernel.UUID) ([]*order.Order, error) {
	if err := originalID.Validate(); err != nil {
		return nil, err
	}

	raw := originalID.Bytes()

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "id = ? OR main_order_id = ?", raw, raw).
		Error
	if err != nil {
		return nil, err
	}

	versions := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		version, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		versions = append(versions, version)
	}

	return versions, nil
}

// MarkChainSuperseded flips the main flag off on every version of a chain.
// Clears stray flags too, not only the expected single one.
func (r *GormOrderRepository) MarkChainSuperseded(ctx context.Context, originalID kernel.UUID) error {
	if err := originalID.Validate(); err != nil {
		return err
	}

	raw := originalID.Bytes()

	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? OR main_order_id = ?", raw, raw).
		Update("is_main_order", false).
		Error
}

// Delete removes a single order version row. Missing rows are a no-op.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes()).Error
}

// AddItemLinks binds an order version to its underlying item rows.
func (r *GormOrderRepository) AddItemLinks(ctx context.Context, orderID kernel.UUID, links []ports.ItemLink) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}

	dtos := make([]OrderItemDTO, 0, len(links))
	for _, link := range links {
		dtos = append(dtos, OrderItemDTO{
			OrderID:  orderID.Bytes(),
			ItemID:   link.ItemID.Bytes(),
			ItemType: int(link.ItemType),
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetItemLinks retrieves the item links of one order version.
func (r *GormOrderRepository) GetItemLinks(ctx context.Context, orderID kernel.UUID) ([]ports.ItemLink, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	err := r.db.WithContext(ctx).
		Order("item_id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	links := make([]ports.ItemLink, 0, len(dtos))
	for _, dto := range dtos {
		itemID, idErr := kernel.UUIDFromBytes(dto.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		links = append(links, ports.ItemLink{ItemType: order.Type(dto.ItemType), ItemID: itemID})
	}

	return links, nil
}

// GetItemLinksForOrders retrieves item links for a batch of order versions,
// grouped by order id.
func (r *GormOrderRepository) GetItemLinksForOrders(
	ctx context.Context,
	orderIDs []kernel.UUID,
) (map[kernel.UUID][]ports.ItemLink, error) {
	grouped := make(map[kernel.UUID][]ports.ItemLink, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	raw := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []OrderItemDTO
	err := r.db.WithContext(ctx).
		Order("item_id").
		Find(&dtos, "order_id IN ?", raw).
		Error
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		orderID, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemID, idErr := kernel.UUIDFromBytes(dto.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		grouped[orderID] = append(grouped[orderID], ports.ItemLink{
			ItemType: order.Type(dto.ItemType),
			ItemID:   itemID,
		})
	}

	return grouped, nil
}

// DeleteItemLinks removes all item links of one order version.
// Missing links are a no-op.
func (r *GormOrderRepository) DeleteItemLinks(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderItemDTO{}, "order_id = ?", orderID.Bytes()).Error
}

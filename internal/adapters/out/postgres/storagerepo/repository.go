package storagerepo

import (
	"context"
	"errors"
	"fmt"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/storage"
	"laundromat/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPickupNumberConflict is returned when the unique (rack, number) index
// rejects an allocation insert. With racks locked FOR UPDATE during the scan
// this should not happen; it backstops a broken isolation assumption.
var ErrPickupNumberConflict = errors.New("pickup number already allocated on this rack")

const uniqueViolationCode = "23505"

// GormStorageRepository implements StorageRepository using GORM.
type GormStorageRepository struct {
	db *gorm.DB
}

// NewGormStorageRepository creates a new GORM storage repository.
func NewGormStorageRepository(db *gorm.DB) *GormStorageRepository {
	return &GormStorageRepository{db: db}
}

// AddRack saves a new rack to the database.
func (r *GormStorageRepository) AddRack(ctx context.Context, rack *storage.Rack) error {
	if err := rack.Validate(); err != nil {
		return err
	}

	dto := rackFromDomain(rack)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetRack retrieves a rack by id without locking.
func (r *GormStorageRepository) GetRack(ctx context.Context, id kernel.UUID) (*storage.Rack, error) {
	return r.getRack(ctx, id, false)
}

// GetRackForUpdate retrieves a rack by id while holding a row lock for the
// rest of the transaction.
func (r *GormStorageRepository) GetRackForUpdate(ctx context.Context, id kernel.UUID) (*storage.Rack, error) {
	return r.getRack(ctx, id, true)
}

func (r *GormStorageRepository) getRack(ctx context.Context, id kernel.UUID, locked bool) (*storage.Rack, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if locked {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto StorageDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storage", id.String())
		}
		return nil, err
	}

	return rackToDomain(dto)
}

// GetAllRacks retrieves every rack ordered by rack number, unlocked.
func (r *GormStorageRepository) GetAllRacks(ctx context.Context) ([]*storage.Rack, error) {
	return r.listRacks(r.db.WithContext(ctx).Order("rack_number"))
}

// GetRacksForAllocation retrieves every rack ordered by ascending used
// capacity while holding row locks. Two concurrent allocators serialize
// here: the second blocks until the first commits its capacity update.
func (r *GormStorageRepository) GetRacksForAllocation(ctx context.Context) ([]*storage.Rack, error) {
	tx := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("used_capacity, rack_number")

	return r.listRacks(tx)
}

func (r *GormStorageRepository) listRacks(tx *gorm.DB) ([]*storage.Rack, error) {
	var dtos []StorageDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	racks := make([]*storage.Rack, 0, len(dtos))
	for _, dto := range dtos {
		rack, err := rackToDomain(dto)
		if err != nil {
			return nil, err
		}
		racks = append(racks, rack)
	}

	return racks, nil
}

// UpdateRack persists a rack's capacity counters.
func (r *GormStorageRepository) UpdateRack(ctx context.Context, rack *storage.Rack) error {
	if err := rack.Validate(); err != nil {
		return err
	}

	dto := rackFromDomain(rack)
	result := r.db.WithContext(ctx).Model(&StorageDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("storage", rack.ID().String())
	}

	return nil
}

// GetActiveNumbers retrieves every active pickup number grouped by rack.
func (r *GormStorageRepository) GetActiveNumbers(ctx context.Context) (map[kernel.UUID]map[int]struct{}, error) {
	var dtos []AllocationDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	occupied := make(map[kernel.UUID]map[int]struct{})
	for _, dto := range dtos {
		rackID, err := kernel.UUIDFromBytes(dto.RackID[:])
		if err != nil {
			return nil, err
		}

		numbers, ok := occupied[rackID]
		if !ok {
			numbers = make(map[int]struct{})
			occupied[rackID] = numbers
		}
		numbers[dto.PickupNumber] = struct{}{}
	}

	return occupied, nil
}

// AddAllocation inserts an active allocation row. A duplicate (rack, number)
// pair maps to ErrPickupNumberConflict.
func (r *GormStorageRepository) AddAllocation(ctx context.Context, allocation *storage.Allocation) error {
	if err := allocation.Validate(); err != nil {
		return err
	}

	dto := allocationFromDomain(allocation)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: rack %s number %d",
				ErrPickupNumberConflict, allocation.RackID(), allocation.PickupNumber())
		}
		return err
	}

	return nil
}

// GetAllocationByOrder retrieves the active allocation of an order chain.
func (r *GormStorageRepository) GetAllocationByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*storage.Allocation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AllocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("allocation", orderID.String())
		}
		return nil, err
	}

	return allocationToDomain(dto)
}

// DeleteAllocation removes an order chain's active allocation.
// Missing rows are a no-op, keeping release idempotent.
func (r *GormStorageRepository) DeleteAllocation(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&AllocationDTO{}, "order_id = ?", orderID.Bytes()).Error
}

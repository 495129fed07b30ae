package commands_test

import (
	"context"

	"laundromat/internal/core/application/usecases/commands"
	"laundromat/internal/core/domain/model/item"
	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/core/domain/model/storage"
	"laundromat/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMain(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetChainVersions(ctx context.Context, originalID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, originalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) MarkChainSuperseded(ctx context.Context, originalID kernel.UUID) error {
	args := m.Called(ctx, originalID)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) AddItemLinks(ctx context.Context, orderID kernel.UUID, links []ports.ItemLink) error {
	args := m.Called(ctx, orderID, links)
	return args.Error(0)
}

func (m *MockOrderRepository) GetItemLinks(ctx context.Context, orderID kernel.UUID) ([]ports.ItemLink, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ItemLink), args.Error(1)
}

func (m *MockOrderRepository) GetItemLinksForOrders(
	ctx context.Context, orderIDs []kernel.UUID,
) (map[kernel.UUID][]ports.ItemLink, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID][]ports.ItemLink), args.Error(1)
}

func (m *MockOrderRepository) DeleteItemLinks(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) AddPressing(ctx context.Context, it *item.PressingItem) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) AddCleaning(ctx context.Context, it *item.CleaningItem) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) GetPressing(ctx context.Context, id kernel.UUID) (*item.PressingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.PressingItem), args.Error(1)
}

func (m *MockItemRepository) GetCleaning(ctx context.Context, id kernel.UUID) (*item.CleaningItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.CleaningItem), args.Error(1)
}

func (m *MockItemRepository) GetPressingByIDs(ctx context.Context, ids []kernel.UUID) ([]*item.PressingItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.PressingItem), args.Error(1)
}

func (m *MockItemRepository) GetCleaningByIDs(ctx context.Context, ids []kernel.UUID) ([]*item.CleaningItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.CleaningItem), args.Error(1)
}

func (m *MockItemRepository) DeletePressing(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteCleaning(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStorageRepository struct{ mock.Mock }

func (m *MockStorageRepository) AddRack(ctx context.Context, rack *storage.Rack) error {
	args := m.Called(ctx, rack)
	return args.Error(0)
}

func (m *MockStorageRepository) GetRack(ctx context.Context, id kernel.UUID) (*storage.Rack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Rack), args.Error(1)
}

func (m *MockStorageRepository) GetRackForUpdate(ctx context.Context, id kernel.UUID) (*storage.Rack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Rack), args.Error(1)
}

func (m *MockStorageRepository) GetAllRacks(ctx context.Context) ([]*storage.Rack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Rack), args.Error(1)
}

func (m *MockStorageRepository) GetRacksForAllocation(ctx context.Context) ([]*storage.Rack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Rack), args.Error(1)
}

func (m *MockStorageRepository) UpdateRack(ctx context.Context, rack *storage.Rack) error {
	args := m.Called(ctx, rack)
	return args.Error(0)
}

func (m *MockStorageRepository) GetActiveNumbers(ctx context.Context) (map[kernel.UUID]map[int]struct{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]map[int]struct{}), args.Error(1)
}

func (m *MockStorageRepository) AddAllocation(ctx context.Context, allocation *storage.Allocation) error {
	args := m.Called(ctx, allocation)
	return args.Error(0)
}

func (m *MockStorageRepository) GetAllocationByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*storage.Allocation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Allocation), args.Error(1)
}

func (m *MockStorageRepository) DeleteAllocation(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUoW) StorageRepository() ports.StorageRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

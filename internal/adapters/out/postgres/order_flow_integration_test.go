package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	postgres_adapter "laundromat/internal/adapters/out/postgres"
	"laundromat/internal/adapters/out/postgres/itemrepo"
	"laundromat/internal/adapters/out/postgres/orderrepo"
	"laundromat/internal/adapters/out/postgres/storagerepo"
	"laundromat/internal/core/application/usecases/commands"
	"laundromat/internal/core/application/usecases/queries"
	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/core/domain/services"
	"laundromat/internal/core/ports"
	"laundromat/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// uowFactoryFunc adapts the GORM unit of work factory to the command-layer
// factory interface, mirroring the composition root wiring.
type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW {
	return f()
}

// noopPublisher is an event publisher stub for flows where event delivery
// is out of scope.
type noopPublisher struct{}

func (noopPublisher) PublishOrderChanged(context.Context, ports.OrderChangedEvent) error {
	return nil
}

// OrderFlowIntegrationTestSuite exercises the full command flows against a
// real PostgreSQL database: creation with storage allocation, delivery with
// storage release, deletion, and concurrent pickup number assignment.
type OrderFlowIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory

	createHandler commands.CreateOrderCommandHandler
	updateHandler commands.UpdateOrderCommandHandler
	deleteHandler commands.DeleteOrderCommandHandler
}

// SetupSuite initializes PostgreSQL container, database connection, and
// command handlers wired the way the composition root wires them.
func (suite *OrderFlowIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&itemrepo.PressingItemDTO{},
		&itemrepo.CleaningItemDTO{},
		&storagerepo.StorageDTO{},
		&storagerepo.AllocationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	uowFactory := uowFactoryFunc(func() commands.UoW { return suite.factory.Create() })

	suite.createHandler = commands.NewCreateOrderCommandHandler(uowFactory, noopPublisher{})
	suite.updateHandler = commands.NewUpdateOrderCommandHandler(uowFactory, noopPublisher{})
	suite.deleteHandler = commands.NewDeleteOrderCommandHandler(uowFactory, noopPublisher{})
}

// SetupTest ensures clean database state before each test.
func (suite *OrderFlowIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, pressing_items, cleaning_items, storages, allocations").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *OrderFlowIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// seedRack persists a rack outside of any transaction.
func (suite *OrderFlowIntegrationTestSuite) seedRack(number, capacity, from, to int) kernel.UUID {
	rack := createTestRack(number, capacity, from, to)
	err := suite.factory.Create().StorageRepository().AddRack(context.Background(), rack)
	suite.Require().NoError(err)
	return rack.ID()
}

// createCleaningOrder runs the create handler for a two-line cleaning order:
// one jacket at 15 plus two shirts at 10 each (total 35, three garments).
func (suite *OrderFlowIntegrationTestSuite) createCleaningOrder() kernel.UUID {
	return suite.createCleaningOrderFor(kernel.NewUUID())
}

// createCleaningOrderFor is createCleaningOrder with a chosen customer.
func (suite *OrderFlowIntegrationTestSuite) createCleaningOrderFor(customerID kernel.UUID) kernel.UUID {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		order.Cleaning,
		customerID,
		order.Cash,
		order.Paid,
		35,
		0,
		[]commands.CleaningLine{
			{Name: "Jacket", UnitPrice: 15, Quantity: 1},
			{Name: "Shirt", UnitPrice: 10, Quantity: 2},
		},
		0,
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)

	err = suite.createHandler.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return orderID
}

// TestCreateCleaningOrder_AllocatesStorage verifies the creation flow end to
// end: the priced order row, the item rows and links, the consumed rack
// capacity, and the active allocation.
func (suite *OrderFlowIntegrationTestSuite) TestCreateCleaningOrder_AllocatesStorage() {
	ctx := context.Background()
	rackID := suite.seedRack(1, 10, 1, 100)

	orderID := suite.createCleaningOrder()

	uow := suite.factory.Create()

	created, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(35, created.Total())
	suite.Equal(order.Pending, created.Status())
	suite.Equal(1, created.PickupNumber())
	suite.Require().NotNil(created.StorageID())
	suite.Equal(rackID, *created.StorageID())
	suite.True(created.IsMainOrder())

	rack, err := uow.StorageRepository().GetRack(ctx, rackID)
	suite.Require().NoError(err)
	suite.Equal(3, rack.UsedCapacity(), "Three garments should consume three slots")

	allocation, err := uow.StorageRepository().GetAllocationByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(1, allocation.PickupNumber())
	suite.Equal(rackID, allocation.RackID())

	links, err := uow.OrderRepository().GetItemLinks(ctx, orderID)
	suite.Require().NoError(err)
	suite.Len(links, 2, "One link per cleaning line")

	itemIDs := make([]kernel.UUID, 0, len(links))
	for _, link := range links {
		suite.Equal(order.Cleaning, link.ItemType)
		itemIDs = append(itemIDs, link.ItemID)
	}
	items, err := uow.ItemRepository().GetCleaningByIDs(ctx, itemIDs)
	suite.Require().NoError(err)
	suite.Len(items, 2)
}

// TestDeliverOrder_ReleasesStorageAndAppendsVersion verifies the delivery
// path: capacity restored, allocation removed, and a new main version
// appended with the immutable fields carried over.
func (suite *OrderFlowIntegrationTestSuite) TestDeliverOrder_ReleasesStorageAndAppendsVersion() {
	ctx := context.Background()
	rackID := suite.seedRack(1, 10, 1, 100)
	orderID := suite.createCleaningOrder()

	delivered := order.Delivered
	cmd, err := commands.NewUpdateOrderCommand(
		orderID, kernel.NewUUID(), kernel.NewUUID(), commands.OrderPatch{Status: &delivered})
	suite.Require().NoError(err)

	err = suite.updateHandler.Handle(ctx, cmd)
	suite.Require().NoError(err)

	uow := suite.factory.Create()

	// Storage is released
	rack, err := uow.StorageRepository().GetRack(ctx, rackID)
	suite.Require().NoError(err)
	suite.Equal(0, rack.UsedCapacity())

	_, err = uow.StorageRepository().GetAllocationByOrder(ctx, orderID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// The chain has a fresh main version with the immutable fields intact
	main, err := uow.OrderRepository().GetMain(ctx, orderID)
	suite.Require().NoError(err)
	suite.NotEqual(orderID, main.ID())
	suite.Equal(order.Delivered, main.Status())
	suite.Equal(35, main.Total())
	suite.Equal(1, main.PickupNumber())
	suite.Require().NotNil(main.MainOrderID())
	suite.Equal(orderID, *main.MainOrderID())

	original, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.False(original.IsMainOrder())

	versions, err := uow.OrderRepository().GetChainVersions(ctx, orderID)
	suite.Require().NoError(err)
	suite.Len(versions, 2)
}

// TestDeleteDeliveredOrder_SkipsRelease verifies that deleting an already
// delivered version does not touch storage again: release happened at
// delivery time and must stay idempotent.
func (suite *OrderFlowIntegrationTestSuite) TestDeleteDeliveredOrder_SkipsRelease() {
	ctx := context.Background()
	rackID := suite.seedRack(1, 10, 1, 100)
	orderID := suite.createCleaningOrder()

	delivered := order.Delivered
	updateCmd, err := commands.NewUpdateOrderCommand(
		orderID, kernel.NewUUID(), kernel.NewUUID(), commands.OrderPatch{Status: &delivered})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.updateHandler.Handle(ctx, updateCmd))

	main, err := suite.factory.Create().OrderRepository().GetMain(ctx, orderID)
	suite.Require().NoError(err)

	deleteCmd, err := commands.NewDeleteOrderCommand(main.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deleteHandler.Handle(ctx, deleteCmd))

	uow := suite.factory.Create()

	_, err = uow.OrderRepository().Get(ctx, main.ID())
	suite.Require().Error(err, "Deleted version should be gone")

	rack, err := uow.StorageRepository().GetRack(ctx, rackID)
	suite.Require().NoError(err)
	suite.Equal(0, rack.UsedCapacity(), "Capacity must not go below zero on double release")
}

// TestDeleteOrder_ReleasesAndCleansUp verifies deletion of an active order
// removes the version row, its links and item rows, and frees storage.
func (suite *OrderFlowIntegrationTestSuite) TestDeleteOrder_ReleasesAndCleansUp() {
	ctx := context.Background()
	rackID := suite.seedRack(1, 10, 1, 100)
	orderID := suite.createCleaningOrder()

	links, err := suite.factory.Create().OrderRepository().GetItemLinks(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(links, 2)

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deleteHandler.Handle(ctx, cmd))

	uow := suite.factory.Create()

	_, err = uow.OrderRepository().Get(ctx, orderID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	remaining, err := uow.OrderRepository().GetItemLinks(ctx, orderID)
	suite.Require().NoError(err)
	suite.Empty(remaining)

	itemIDs := []kernel.UUID{links[0].ItemID, links[1].ItemID}
	items, err := uow.ItemRepository().GetCleaningByIDs(ctx, itemIDs)
	suite.Require().NoError(err)
	suite.Empty(items, "Item rows should be removed with the last version")

	rack, err := uow.StorageRepository().GetRack(ctx, rackID)
	suite.Require().NoError(err)
	suite.Equal(0, rack.UsedCapacity())

	_, err = uow.StorageRepository().GetAllocationByOrder(ctx, orderID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestConcurrentCreates_DistinctPickupNumbers fills a five-slot rack from
// five concurrent creations and verifies every order got its own pickup
// number. A sixth creation must fail with no capacity left.
func (suite *OrderFlowIntegrationTestSuite) TestConcurrentCreates_DistinctPickupNumbers() {
	ctx := context.Background()
	rackID := suite.seedRack(1, 5, 1, 5)

	const workers = 5

	createErrs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			cmd, err := commands.NewCreateOrderCommand(
				kernel.NewUUID(),
				order.Pressing,
				kernel.NewUUID(),
				order.Cash,
				order.Paid,
				14,
				1,
				nil,
				0,
				kernel.NewUUID(),
			)
			if err != nil {
				createErrs[slot] = err
				return
			}
			createErrs[slot] = suite.createHandler.Handle(ctx, cmd)
		}(i)
	}
	wg.Wait()

	for i, err := range createErrs {
		suite.Require().NoError(err, "Concurrent creation %d should succeed", i)
	}

	activeNumbers, err := suite.factory.Create().StorageRepository().GetActiveNumbers(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(activeNumbers[rackID], workers, "Every order needs its own pickup number")
	for number := 1; number <= workers; number++ {
		suite.Contains(activeNumbers[rackID], number)
	}

	// The rack is full now
	overflowCmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Pressing, kernel.NewUUID(), order.Cash, order.Paid,
		14, 1, nil, 0, kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.createHandler.Handle(ctx, overflowCmd)
	suite.Require().Error(err)
	suite.True(errors.Is(err, services.ErrNoCapacityAvailable),
		"Overflow creation should report exhausted capacity, got: %v", err)
}

// TestCreateOrder_TicketNumberSkipsAllocation verifies legacy ticket intake:
// the given number is stored verbatim and no rack state is touched.
func (suite *OrderFlowIntegrationTestSuite) TestCreateOrder_TicketNumberSkipsAllocation() {
	ctx := context.Background()
	rackID := suite.seedRack(1, 10, 1, 100)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, order.Pressing, kernel.NewUUID(), order.Card, order.Unpaid,
		0, 13, nil, 42, kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.createHandler.Handle(ctx, cmd))

	uow := suite.factory.Create()

	created, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(42, created.PickupNumber())
	suite.Nil(created.StorageID())
	suite.Equal(154, created.Total(), "A dozen at 140 plus one at 14")

	rack, err := uow.StorageRepository().GetRack(ctx, rackID)
	suite.Require().NoError(err)
	suite.Equal(0, rack.UsedCapacity())

	_, err = uow.StorageRepository().GetAllocationByOrder(ctx, orderID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestCustomerListing_HidesDeliveredByDefault verifies the front-desk view
// of a customer's open orders: delivered chains drop out of the default
// listing and come back either wholesale or via an explicit status filter.
func (suite *OrderFlowIntegrationTestSuite) TestCustomerListing_HidesDeliveredByDefault() {
	ctx := context.Background()
	suite.seedRack(1, 10, 1, 100)

	customerID := kernel.NewUUID()
	openID := suite.createCleaningOrderFor(customerID)
	deliveredID := suite.createCleaningOrderFor(customerID)

	delivered := order.Delivered
	cmd, err := commands.NewUpdateOrderCommand(
		deliveredID, kernel.NewUUID(), kernel.NewUUID(), commands.OrderPatch{Status: &delivered})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.updateHandler.Handle(ctx, cmd))

	handler := queries.NewGetOrdersByCustomerQueryHandler(suite.db)

	// Default listing shows only the open chain
	query, err := queries.NewGetOrdersByCustomerQuery(customerID, queries.OrderFilters{})
	suite.Require().NoError(err)
	views, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(openID, views[0].OriginalID)

	// Opting in returns both chains
	query, err = queries.NewGetOrdersByCustomerQuery(
		customerID, queries.OrderFilters{IncludeDelivered: true})
	suite.Require().NoError(err)
	views, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(views, 2)

	// An explicit status filter overrides the hiding
	query, err = queries.NewGetOrdersByCustomerQuery(
		customerID, queries.OrderFilters{Status: &delivered})
	suite.Require().NoError(err)
	views, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(deliveredID, views[0].OriginalID)
}

// TestOrderFlowIntegrationSuite runs the command flow integration suite.
// Requires Docker to be available for PostgreSQL container.
func TestOrderFlowIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderFlowIntegrationTestSuite))
}

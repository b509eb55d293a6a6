package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fleetdispatch/internal/adapters/out/postgres/orderrepo"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-001")

	suite.tracker.On("TrackAggregate", "ORD-001", testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_StateConflict() {
	ctx := context.Background()
	first := suite.createTestOrder("ORD-001")
	second := suite.createTestOrder("ORD-001")

	suite.tracker.On("TrackAggregate", "ORD-001", first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrStateConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_PendingOrder_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-001")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Equal("Warehouse 7", retrieved.Destination())
	suite.Equal(testOrder.Cargo().Weight(), retrieved.Cargo().Weight())
	suite.Equal(testOrder.Cargo().Volume(), retrieved.Cargo().Volume())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.VehiclePlate())
	suite.Nil(retrieved.DriverID())
	suite.Nil(retrieved.StartTime())
	suite.Nil(retrieved.EndTime())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_AssignedOrder_BindingSurvives() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-001")

	plate, err := kernel.NewPlateNumber("B-1234")
	suite.Require().NoError(err)
	driverID, err := kernel.NewDriverID("D-42")
	suite.Require().NoError(err)

	assignedAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	suite.Require().NoError(testOrder.Assign(plate, driverID, assignedAt))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Loading, retrieved.Status())
	suite.Require().NotNil(retrieved.VehiclePlate())
	suite.True(retrieved.VehiclePlate().IsEqual(plate))
	suite.Require().NotNil(retrieved.DriverID())
	suite.True(retrieved.DriverID().IsEqual(driverID))
	suite.Require().NotNil(retrieved.StartTime())
	suite.True(retrieved.StartTime().Equal(assignedAt))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_NotFound() {
	ctx := context.Background()

	id, err := kernel.NewOrderID("ORD-999")
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, id)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleAdvance_Persisted() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-001")

	plate, _ := kernel.NewPlateNumber("B-1234")
	driverID, _ := kernel.NewDriverID("D-42")
	assignedAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Assign(plate, driverID, assignedAt))
	suite.Require().NoError(testOrder.StartTransit())
	suite.Require().NoError(testOrder.Complete(assignedAt.Add(2 * time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Completed, retrieved.Status())
	suite.Require().NotNil(retrieved.EndTime())
	suite.True(retrieved.EndTime().Equal(assignedAt.Add(2 * time.Hour)))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstPending_OldestWins() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestOrder("ORD-001")
	second := suite.createTestOrder("ORD-002")

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	pending, err := suite.repository.GetFirstPending(ctx)
	suite.Require().NoError(err)
	suite.True(pending.ID().IsEqual(first.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstPending_SkipsAssignedOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	assigned := suite.createTestOrder("ORD-001")
	plate, _ := kernel.NewPlateNumber("B-1234")
	driverID, _ := kernel.NewDriverID("D-42")
	suite.Require().NoError(assigned.Assign(plate, driverID, time.Now()))

	waiting := suite.createTestOrder("ORD-002")

	suite.Require().NoError(suite.repository.Add(ctx, assigned))
	suite.Require().NoError(suite.repository.Add(ctx, waiting))

	pending, err := suite.repository.GetFirstPending(ctx)
	suite.Require().NoError(err)
	suite.True(pending.ID().IsEqual(waiting.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstPending_NoneWaiting_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetFirstPending(ctx)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByVehicle_FindsLoadingAndTransit() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	plate, _ := kernel.NewPlateNumber("B-1234")
	driverID, _ := kernel.NewDriverID("D-42")

	active := suite.createTestOrder("ORD-001")
	suite.Require().NoError(active.Assign(plate, driverID, time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, active))

	found, err := suite.repository.GetActiveByVehicle(ctx, plate)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(active.ID()))
	suite.Equal(order.Loading, found.Status())

	suite.Require().NoError(active.StartTransit())
	suite.Require().NoError(suite.repository.Update(ctx, active))

	found, err = suite.repository.GetActiveByVehicle(ctx, plate)
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, found.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByVehicle_CompletedOrderExcluded() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	plate, _ := kernel.NewPlateNumber("B-1234")
	driverID, _ := kernel.NewDriverID("D-42")

	done := suite.createTestOrder("ORD-001")
	suite.Require().NoError(done.Assign(plate, driverID, time.Now()))
	suite.Require().NoError(done.StartTransit())
	suite.Require().NoError(done.Complete(time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, done))

	_, err := suite.repository.GetActiveByVehicle(ctx, plate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestOrder creates a pending order with the given id.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id string) *order.Order {
	orderID, err := kernel.NewOrderID(id)
	suite.Require().NoError(err)

	cargo, err := kernel.NewCargo(1200, 8)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(orderID, "Warehouse 7", cargo)
	suite.Require().NoError(err)

	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

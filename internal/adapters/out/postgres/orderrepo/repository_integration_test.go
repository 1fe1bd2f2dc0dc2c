package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.TrackingEventDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, order_tracking").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	discount := kernel.NewMoney(9000)
	item1, err := order.NewItem(kernel.NewUUID(), "Paneer Tikka", 2, kernel.NewMoney(12000), nil)
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), "Garlic Naan", 1, kernel.NewMoney(10000), &discount)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateNumber(time.Now().UTC()),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{item1, item2},
		"221B MG Road, Bengaluru",
		"upi",
		"Less spicy",
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertRowCount("orders", 1)
	suite.assertRowCount("order_items", 2)
	suite.assertRowCount("order_tracking", 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsConflictError() {
	ctx := context.Background()

	number := order.GenerateNumber(time.Now().UTC())
	item, err := order.NewItem(kernel.NewUUID(), "Masala Dosa", 1, kernel.NewMoney(8000), nil)
	suite.Require().NoError(err)

	first, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, "12 Brigade Road", "card", "")
	suite.Require().NoError(err)
	second, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, "12 Brigade Road", "card", "")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.ErrorIs(err, errs.ErrConflict)

	suite.assertRowCount("orders", 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.True(originalOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.Equal(originalOrder.Number().String(), retrievedOrder.Number().String())
	suite.True(originalOrder.CustomerID().IsEqual(retrievedOrder.CustomerID()))
	suite.True(originalOrder.SellerID().IsEqual(retrievedOrder.SellerID()))
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Nil(retrievedOrder.Agent())
	suite.Len(retrievedOrder.Items(), 2)
	suite.True(originalOrder.Subtotal().IsEqual(retrievedOrder.Subtotal()))
	suite.True(originalOrder.FinalAmount().IsEqual(retrievedOrder.FinalAmount()))
	suite.Equal("221B MG Road, Bengaluru", retrievedOrder.DeliveryAddress())
	suite.Equal("upi", retrievedOrder.PaymentMethod())
	suite.Len(retrievedOrder.Events(), 1)
	suite.Equal(order.Pending, retrievedOrder.LatestEvent().Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAdvance_PersistsStatusAndEvents() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceBySeller(testOrder.SellerID(), order.Confirmed, "Seller confirmed"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Confirmed, retrievedOrder.Status())
	suite.Len(retrievedOrder.Events(), 2)
	suite.Equal("Seller confirmed", retrievedOrder.LatestEvent().Notes())
	suite.assertRowCount("order_tracking", 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AgentAssignment_PersistsAgent() {
	ctx := context.Background()

	agentID := kernel.NewUUID()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceBySeller(testOrder.SellerID(), order.Confirmed, ""))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(testOrder.AssignAgent(testOrder.SellerID(), agentID, ""))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Ready, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Agent())
	suite.True(agentID.IsEqual(*retrievedOrder.Agent()))
	suite.Len(retrievedOrder.Events(), 3)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RepeatedPersist_DoesNotDuplicateEvents() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceBySeller(testOrder.SellerID(), order.Confirmed, ""))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.assertRowCount("order_tracking", 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveryWithLocation_RoundTripsGeotag() {
	ctx := context.Background()

	agentID := kernel.NewUUID()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(4)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceBySeller(testOrder.SellerID(), order.Confirmed, ""))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Require().NoError(testOrder.AssignAgent(testOrder.SellerID(), agentID, ""))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AdvanceByAgent(agentID, order.OutForDelivery, "Picked up", &location))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.OutForDelivery, retrievedOrder.Status())
	latest := retrievedOrder.LatestEvent()
	suite.Require().NotNil(latest.Location())
	suite.InDelta(12.9716, latest.Location().Latitude(), 0.000001)
	suite.InDelta(77.5946, latest.Location().Longitude(), 0.000001)

	suite.tracker.AssertExpectations(suite.T())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "supplytrace/internal/adapters/out/postgres"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/model/outbox"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	suite.Require().NoError(postgres_adapter.Migrate(db))

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, legs, suppliers, distributors, products, inventories, transporters, tracking_events, outbox_messages",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.LegRepository(), "First instance should provide leg repository")
	suite.NotNil(uow2.TrackingRepository(), "Second instance should provide tracking repository")
	suite.NotNil(uow2.OutboxRepository(), "Second instance should provide outbox repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_ApprovalWorkflow verifies the repositories touched by order
// approval commit atomically: the order, its first hop, the audit trail entry
// and the outbox message.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ApprovalWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	firstLeg := createTestLeg(testOrder.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.LegRepository().Add(ctx, firstLeg)
	suite.Require().NoError(err)

	event, err := tracking.NewEvent(
		kernel.NewUUID(), testOrder.ID(), nil, tracking.EventOrderApproved, "order approved",
	)
	suite.Require().NoError(err)
	err = uow.TrackingRepository().Add(ctx, event)
	suite.Require().NoError(err)

	message, err := outbox.NewMessage(
		kernel.NewUUID(), "supplytrace.order-events", testOrder.ID().String(),
		map[string]string{"event": "ORDER_APPROVED"},
	)
	suite.Require().NoError(err)
	err = uow.OutboxRepository().Add(ctx, message)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// All four writes are visible through a fresh unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	legs, err := newUow.LegRepository().GetAllByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(legs, 1)
	suite.Equal(firstLeg.ID(), legs[0].ID())

	events, err := newUow.TrackingRepository().GetAllByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(events, 1)
	suite.Equal(tracking.EventOrderApproved, events[0].Type())

	pending, err := newUow.OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(pending, 1)
	suite.Equal(testOrder.ID().String(), pending[0].Key())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	firstLeg := createTestLeg(testOrder.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.LegRepository().Add(ctx, firstLeg)
	suite.Require().NoError(err)

	// Entities exist within the transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.LegRepository().Get(ctx, firstLeg.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Nothing persisted
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.LegRepository().Get(ctx, firstLeg.ID())
	suite.Require().Error(err, "Leg should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_StatusUpdateWorkflow walks a custody hop through acceptance
// and shipment in separate transactions and verifies each state survives.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusUpdateWorkflow() {
	ctx := context.Background()

	testOrder := createTestOrder()
	firstLeg := createTestLeg(testOrder.ID())

	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.Begin(ctx))
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setupUow.LegRepository().Add(ctx, firstLeg))
	suite.Require().NoError(setupUow.Commit(ctx))

	// The recipient accepts the hop
	acceptUow := suite.factory.Create()
	suite.Require().NoError(acceptUow.Begin(ctx))

	storedLeg, err := acceptUow.LegRepository().Get(ctx, firstLeg.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(storedLeg.Accept())
	suite.Require().NoError(acceptUow.LegRepository().Update(ctx, storedLeg))
	suite.Require().NoError(acceptUow.Commit(ctx))

	// The supplier ships it
	shipUow := suite.factory.Create()
	suite.Require().NoError(shipUow.Begin(ctx))

	storedLeg, err = shipUow.LegRepository().Get(ctx, firstLeg.ID())
	suite.Require().NoError(err)
	suite.Equal(leg.Accepted, storedLeg.Status())
	suite.Require().NoError(storedLeg.Ship())
	suite.Require().NoError(shipUow.LegRepository().Update(ctx, storedLeg))
	suite.Require().NoError(shipUow.Commit(ctx))

	finalUow := suite.factory.Create()
	storedLeg, err = finalUow.LegRepository().Get(ctx, firstLeg.ID())
	suite.Require().NoError(err)
	suite.Equal(leg.InTransit, storedLeg.Status())
}

// createTestOrder creates a valid pending order for testing purposes.
func createTestOrder() *order.Order {
	total, _ := kernel.NewMoney(12500)
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		5,
		total,
		"12 Harbor Street",
	)
	return testOrder
}

// createTestLeg creates a valid first custody hop for the given order.
func createTestLeg(orderID kernel.UUID) *leg.Leg {
	testLeg, _ := leg.NewSupplierLeg(
		kernel.NewUUID(),
		orderID,
		1,
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
	)
	return testLeg
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

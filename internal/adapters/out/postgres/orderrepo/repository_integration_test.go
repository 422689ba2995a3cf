package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"supplytrace/internal/adapters/out/postgres/orderrepo"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/pkg/errs"

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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
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

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	ctx := context.Background()

	var invalid order.Order
	err := suite.repository.Add(ctx, &invalid)

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.SupplierID(), retrieved.SupplierID())
	suite.Equal(original.ProductID(), retrieved.ProductID())
	suite.Equal(5, retrieved.Quantity())
	suite.True(original.TotalAmount().IsEqual(retrieved.TotalAmount()))
	suite.Equal("12 Harbor Street", retrieved.DeliveryAddress())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.Signature())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_SignedOrder_RestoresSignatureBundle() {
	ctx := context.Background()

	signedAt := time.Now().UTC().Truncate(time.Microsecond)
	signature, err := order.NewSignature("order-hash", "supplier-sig", "server-sig", "qr-token", signedAt)
	suite.Require().NoError(err)

	original := suite.createTestOrderWithStatus(order.Approved, &signature)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Approved, retrieved.Status())
	suite.Require().NotNil(retrieved.Signature())
	suite.Equal("order-hash", retrieved.Signature().OrderHash())
	suite.Equal("supplier-sig", retrieved.Signature().SupplierSignature())
	suite.Equal("server-sig", retrieved.Signature().ServerSignature())
	suite.Equal("qr-token", retrieved.Signature().QRToken())
	suite.WithinDuration(signedAt, retrieved.Signature().SignedAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetForUpdate(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ApprovalPersistsSignature() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	signature, err := order.NewSignature("order-hash", "supplier-sig", "server-sig", "qr-token", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(original.Approve(signature))

	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, retrieved.Status())
	suite.Require().NotNil(retrieved.Signature())
	suite.Equal("qr-token", retrieved.Signature().QRToken())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestOrder()
	err := suite.repository.Update(ctx, missing)

	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_NewestFirst() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	oldest := suite.createRestoredOrder(customerID, kernel.NewUUID(), time.Now().UTC().Add(-2*time.Hour))
	middle := suite.createRestoredOrder(customerID, kernel.NewUUID(), time.Now().UTC().Add(-time.Hour))
	newest := suite.createRestoredOrder(customerID, kernel.NewUUID(), time.Now().UTC())
	foreign := suite.createRestoredOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())

	for _, o := range []*order.Order{oldest, middle, newest, foreign} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 3)
	suite.Equal(newest.ID(), orders[0].ID())
	suite.Equal(middle.ID(), orders[1].ID())
	suite.Equal(oldest.ID(), orders[2].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllBySupplier_FiltersBySupplier() {
	ctx := context.Background()

	supplierID := kernel.NewUUID()
	mine := suite.createRestoredOrder(kernel.NewUUID(), supplierID, time.Now().UTC())
	other := suite.createRestoredOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())

	for _, o := range []*order.Order{mine, other} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.GetAllBySupplier(ctx, supplierID)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(mine.ID(), orders[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_NoOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	orders, err := suite.repository.GetAllByCustomer(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(orders)
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.UUID{})
				return err
			},
			expected: "UUID",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				return suite.repository.Update(context.Background(), suite.createTestOrder())
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// createTestOrder creates a basic pending order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	totalAmount, err := kernel.NewMoney(12500)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		5,
		totalAmount,
		"12 Harbor Street",
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus creates an order with the given status and
// optional signature bundle via RestoreOrder.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	status order.Status, signature *order.Signature,
) *order.Order {
	totalAmount, err := kernel.NewMoney(12500)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		5,
		totalAmount,
		"12 Harbor Street",
		status,
		signature,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// createRestoredOrder creates a pending order for the given parties with an
// explicit order date, used to verify ordering of list queries.
func (suite *OrderRepositoryIntegrationTestSuite) createRestoredOrder(
	customerID, supplierID kernel.UUID, orderDate time.Time,
) *order.Order {
	totalAmount, err := kernel.NewMoney(12500)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		customerID,
		supplierID,
		kernel.NewUUID(),
		5,
		totalAmount,
		"12 Harbor Street",
		order.Pending,
		nil,
		orderDate,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

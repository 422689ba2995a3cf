package commands_test

import (
	"context"
	"errors"

	"supplytrace/internal/core/application/usecases/commands"
	"supplytrace/internal/core/domain/model/distributor"
	"supplytrace/internal/core/domain/model/inventory"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/model/outbox"
	"supplytrace/internal/core/domain/model/product"
	"supplytrace/internal/core/domain/model/supplier"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/core/domain/model/transporter"
	"supplytrace/internal/core/ports"

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
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByCustomer(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllBySupplier(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockLegRepository struct{ mock.Mock }

func (m *MockLegRepository) Add(ctx context.Context, l *leg.Leg) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLegRepository) Update(ctx context.Context, l *leg.Leg) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLegRepository) Get(ctx context.Context, id kernel.UUID) (*leg.Leg, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leg.Leg), args.Error(1)
}
func (m *MockLegRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*leg.Leg, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leg.Leg), args.Error(1)
}
func (m *MockLegRepository) GetLastByOrder(ctx context.Context, orderID kernel.UUID) (*leg.Leg, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leg.Leg), args.Error(1)
}
func (m *MockLegRepository) HasActiveByTransporter(ctx context.Context, transporterID kernel.UUID) (bool, error) {
	args := m.Called(ctx, transporterID)
	return args.Bool(0), args.Error(1)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Add(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

type MockDistributorRepository struct{ mock.Mock }

func (m *MockDistributorRepository) Add(ctx context.Context, d *distributor.Distributor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDistributorRepository) Get(ctx context.Context, id kernel.UUID) (*distributor.Distributor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*distributor.Distributor), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, inv *inventory.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInventoryRepository) Update(ctx context.Context, inv *inventory.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInventoryRepository) GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID kernel.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, warehouseID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}
func (m *MockInventoryRepository) GetByWarehouseAndProductForUpdate(ctx context.Context, warehouseID, productID kernel.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, warehouseID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

type MockTransporterRepository struct{ mock.Mock }

func (m *MockTransporterRepository) Add(ctx context.Context, tr *transporter.Transporter) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}
func (m *MockTransporterRepository) Get(ctx context.Context, id kernel.UUID) (*transporter.Transporter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transporter.Transporter), args.Error(1)
}
func (m *MockTransporterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, event *tracking.TrackingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockTrackingRepository) GetAllByOrder(_ context.Context, _ kernel.UUID) ([]*tracking.TrackingEvent, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}
func (m *MockOutboxRepository) Update(ctx context.Context, message *outbox.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// mockTx carries the transaction lifecycle shared by every unit of work mock.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockOrderUoW) SupplierRepository() ports.SupplierRepository {
	return m.Called().Get(0).(ports.SupplierRepository)
}
func (m *MockOrderUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}
func (m *MockOrderUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}
func (m *MockOrderUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockApprovalUoW struct{ mockTx }

func (m *MockApprovalUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockApprovalUoW) SupplierRepository() ports.SupplierRepository {
	return m.Called().Get(0).(ports.SupplierRepository)
}
func (m *MockApprovalUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockApprovalUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}
func (m *MockApprovalUoW) DistributorRepository() ports.DistributorRepository {
	return m.Called().Get(0).(ports.DistributorRepository)
}
func (m *MockApprovalUoW) TransporterRepository() ports.TransporterRepository {
	return m.Called().Get(0).(ports.TransporterRepository)
}
func (m *MockApprovalUoW) LegRepository() ports.LegRepository {
	return m.Called().Get(0).(ports.LegRepository)
}
func (m *MockApprovalUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}
func (m *MockApprovalUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockApprovalUoWFactory struct{ mock.Mock }

func (m *MockApprovalUoWFactory) Create() commands.ApprovalUoW {
	return m.Called().Get(0).(commands.ApprovalUoW)
}

type MockCancelUoW struct{ mockTx }

func (m *MockCancelUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockCancelUoW) LegRepository() ports.LegRepository {
	return m.Called().Get(0).(ports.LegRepository)
}
func (m *MockCancelUoW) SupplierRepository() ports.SupplierRepository {
	return m.Called().Get(0).(ports.SupplierRepository)
}
func (m *MockCancelUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}
func (m *MockCancelUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}
func (m *MockCancelUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockCancelUoWFactory struct{ mock.Mock }

func (m *MockCancelUoWFactory) Create() commands.CancelUoW {
	return m.Called().Get(0).(commands.CancelUoW)
}

type MockChainUoW struct{ mockTx }

func (m *MockChainUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockChainUoW) LegRepository() ports.LegRepository {
	return m.Called().Get(0).(ports.LegRepository)
}
func (m *MockChainUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}
func (m *MockChainUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockChainUoWFactory struct{ mock.Mock }

func (m *MockChainUoWFactory) Create() commands.ChainUoW {
	return m.Called().Get(0).(commands.ChainUoW)
}

type MockForwardUoW struct{ mockTx }

func (m *MockForwardUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockForwardUoW) LegRepository() ports.LegRepository {
	return m.Called().Get(0).(ports.LegRepository)
}
func (m *MockForwardUoW) DistributorRepository() ports.DistributorRepository {
	return m.Called().Get(0).(ports.DistributorRepository)
}
func (m *MockForwardUoW) TransporterRepository() ports.TransporterRepository {
	return m.Called().Get(0).(ports.TransporterRepository)
}
func (m *MockForwardUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}
func (m *MockForwardUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockForwardUoWFactory struct{ mock.Mock }

func (m *MockForwardUoWFactory) Create() commands.ForwardUoW {
	return m.Called().Get(0).(commands.ForwardUoW)
}

type MockVerifyUoW struct{ mockTx }

func (m *MockVerifyUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockVerifyUoW) LegRepository() ports.LegRepository {
	return m.Called().Get(0).(ports.LegRepository)
}
func (m *MockVerifyUoW) SupplierRepository() ports.SupplierRepository {
	return m.Called().Get(0).(ports.SupplierRepository)
}
func (m *MockVerifyUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}
func (m *MockVerifyUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockVerifyUoWFactory struct{ mock.Mock }

func (m *MockVerifyUoWFactory) Create() commands.VerifyUoW {
	return m.Called().Get(0).(commands.VerifyUoW)
}

type MockKeysUoW struct{ mockTx }

func (m *MockKeysUoW) SupplierRepository() ports.SupplierRepository {
	return m.Called().Get(0).(ports.SupplierRepository)
}
func (m *MockKeysUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockKeysUoWFactory struct{ mock.Mock }

func (m *MockKeysUoWFactory) Create() commands.KeysUoW {
	return m.Called().Get(0).(commands.KeysUoW)
}

type MockOutboxUoW struct{ mockTx }

func (m *MockOutboxUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

type MockMessagePublisher struct{ mock.Mock }

func (m *MockMessagePublisher) Publish(ctx context.Context, topic string, key, value []byte) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

package commands_test

import (
	"testing"

	"supplytrace/internal/core/application/usecases/commands"
	"supplytrace/internal/core/domain/model/distributor"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/model/transporter"
	"supplytrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reassignableOrder builds a signed order whose first hop was rejected,
// leaving the order in PendingReassign. Returns the order and the rejected leg.
func reassignableOrder(t *testing.T, supplierID, rejectedDistributorID kernel.UUID) (*order.Order, *leg.Leg) {
	t.Helper()

	_, privateKey := supplierWithKeys(t, supplierID)
	o := pendingOrder(t, kernel.NewUUID(), supplierID, kernel.NewUUID())
	signedOrder(t, o, privateKey)
	require.NoError(t, o.MarkReassignPending())

	rejected, err := leg.NewSupplierLeg(kernel.NewUUID(), o.ID(), 1, supplierID, rejectedDistributorID, kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, rejected.Reject())

	return o, rejected
}

func TestReassignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	o, rejected := reassignableOrder(t, supplierID, kernel.NewUUID())

	replacementID := kernel.NewUUID()
	replacement, err := distributor.NewDistributor(replacementID, kernel.NewUUID(), "Northway Logistics")
	require.NoError(t, err)

	transporterID := kernel.NewUUID()
	tr, err := transporter.NewSupplierTransporter(transporterID, "Van 2", "KA-01-7788", supplierID)
	require.NoError(t, err)

	cmd, err := commands.NewReassignOrderCommand(o.ID(), supplierID, replacementID, transporterID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	legRepo := new(MockLegRepository)
	legRepo.On("GetLastByOrder", mock.Anything, o.ID()).Return(rejected, nil).Once()
	legRepo.On("Add", mock.Anything, mock.AnythingOfType("*leg.Leg")).Return(nil).Once()
	distributorRepo := new(MockDistributorRepository)
	distributorRepo.On("Get", mock.Anything, replacementID).Return(replacement, nil).Once()
	transporterRepo := new(MockTransporterRepository)
	transporterRepo.On("Get", mock.Anything, transporterID).Return(tr, nil).Once()

	uow, factory := newForwardUoW(orderRepo, legRepo)
	uow.On("DistributorRepository").Return(distributorRepo)
	uow.On("TransporterRepository").Return(transporterRepo)
	trailExpectations(uow)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewReassignOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Approved, o.Status())
	orderRepo.AssertExpectations(t)
	legRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReassignOrderCommandHandler_Handle_SameDistributorAgain(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	rejectedDistributorID := kernel.NewUUID()
	o, rejected := reassignableOrder(t, supplierID, rejectedDistributorID)

	// Reassigning back to the distributor that just rejected the hop.
	cmd, err := commands.NewReassignOrderCommand(o.ID(), supplierID, rejectedDistributorID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	legRepo := new(MockLegRepository)
	legRepo.On("GetLastByOrder", mock.Anything, o.ID()).Return(rejected, nil).Once()

	_, factory := newForwardUoW(orderRepo, legRepo)

	h := commands.NewReassignOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, order.PendingReassign, o.Status())
	legRepo.AssertExpectations(t)
}

func TestReassignOrderCommandHandler_Handle_LastHopNotRejected(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	_, privateKey := supplierWithKeys(t, supplierID)
	o := pendingOrder(t, kernel.NewUUID(), supplierID, kernel.NewUUID())
	signedOrder(t, o, privateKey)

	// The first hop is still pending acceptance, nothing to replace yet.
	open, err := leg.NewSupplierLeg(kernel.NewUUID(), o.ID(), 1, supplierID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewReassignOrderCommand(o.ID(), supplierID, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	legRepo := new(MockLegRepository)
	legRepo.On("GetLastByOrder", mock.Anything, o.ID()).Return(open, nil).Once()

	_, factory := newForwardUoW(orderRepo, legRepo)

	h := commands.NewReassignOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	var invalidState *errs.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
	assert.Contains(t, err.Error(), leg.Pending.String())
}

func TestReassignOrderCommandHandler_Handle_WrongSupplier(t *testing.T) {
	ctx := t.Context()
	o, _ := reassignableOrder(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewReassignOrderCommand(o.ID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	legRepo := new(MockLegRepository)

	_, factory := newForwardUoW(orderRepo, legRepo)

	h := commands.NewReassignOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	var forbidden *errs.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
}

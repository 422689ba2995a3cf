package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/core/domain/services"
	"supplytrace/internal/pkg/cryptoutils"
	"supplytrace/internal/pkg/errs"
)

// ApproveOrderCommandHandler handles the business logic for order approval.
//
// Approval is the pivotal command of the fulfillment flow. In one
// transaction it:
//   - authenticates the supplier by hashing the presented private key and
//     comparing it against the stored digest in constant time
//   - row-locks the stock record and reserves the ordered quantity
//   - produces the two-tier signature bundle and the package token
//   - opens the first custody hop towards the chosen distributor
//
// Any failure rolls the whole transaction back: an approved order is always
// signed, stocked and has its first hop.
type ApproveOrderCommandHandler struct {
	uowFactory       ApprovalUoWFactory
	signer           services.CustodySigner
	serverPrivateKey string
}

// NewApproveOrderCommandHandler creates a handler for order approval.
// The server private key PEM counter-signs every supplier signature.
func NewApproveOrderCommandHandler(
	uowFactory ApprovalUoWFactory,
	signer services.CustodySigner,
	serverPrivateKey string,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory:       uowFactory,
		signer:           signer,
		serverPrivateKey: serverPrivateKey,
	}
}

// Handle processes the order approval command.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	supplier, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	if !supplier.HasKeys() {
		return errs.NewInvalidCredentialError("supplier has no provisioned keys")
	}
	if !cryptoutils.VerifyPrivateKeyHash(cmd.PrivateKey(), supplier.PrivateKeyHash()) {
		return errs.NewInvalidCredentialError("private key does not match the provisioned key")
	}

	approvedOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !approvedOrder.SupplierID().IsEqual(cmd.SupplierID()) {
		return errs.NewForbiddenError("order is addressed to a different supplier")
	}

	// Recipient and carrier must exist and the carrier must belong to the
	// approving supplier before any state changes.
	if _, err = uow.DistributorRepository().Get(ctx, cmd.DistributorID()); err != nil {
		return err
	}

	transporter, err := uow.TransporterRepository().Get(ctx, cmd.TransporterID())
	if err != nil {
		return err
	}
	if !transporter.IsOwnedBySupplier(cmd.SupplierID()) {
		return errs.NewForbiddenError("transporter is not owned by the approving supplier")
	}

	stock, err := uow.InventoryRepository().GetByWarehouseAndProductForUpdate(
		ctx, supplier.WarehouseID(), approvedOrder.ProductID(),
	)
	if err != nil {
		return err
	}
	if err = stock.Reserve(approvedOrder.Quantity()); err != nil {
		return err
	}
	if err = uow.InventoryRepository().Update(ctx, stock); err != nil {
		return err
	}

	signature, err := h.signer.Sign(approvedOrder, cmd.PrivateKey(), h.serverPrivateKey)
	if err != nil {
		return err
	}
	if err = approvedOrder.Approve(signature); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, approvedOrder); err != nil {
		return err
	}

	firstLeg, err := leg.NewSupplierLeg(
		cmd.LegID(),
		approvedOrder.ID(),
		1,
		cmd.SupplierID(),
		cmd.DistributorID(),
		cmd.TransporterID(),
	)
	if err != nil {
		return err
	}
	if err = uow.LegRepository().Add(ctx, firstLeg); err != nil {
		return err
	}

	legID := firstLeg.ID()
	description := fmt.Sprintf("order approved and signed, first hop opened to distributor %s", cmd.DistributorID())
	if err = recordTrail(ctx, uow, approvedOrder.ID(), &legID, tracking.EventOrderApproved, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

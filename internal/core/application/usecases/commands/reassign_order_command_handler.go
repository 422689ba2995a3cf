package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// ReassignOrderCommandHandler handles the supplier replacing a rejected
// first hop. The order returns to Approved and a fresh hop opens towards a
// different distributor than the one that rejected.
type ReassignOrderCommandHandler struct {
	uowFactory ForwardUoWFactory
}

// NewReassignOrderCommandHandler creates a handler for first-hop reassignment.
func NewReassignOrderCommandHandler(uowFactory ForwardUoWFactory) ReassignOrderCommandHandler {
	return ReassignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reassignment command.
func (h *ReassignOrderCommandHandler) Handle(ctx context.Context, cmd ReassignOrderCommand) error {
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

	reassignedOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !reassignedOrder.SupplierID().IsEqual(cmd.SupplierID()) {
		return errs.NewForbiddenError("order is addressed to a different supplier")
	}

	lastLeg, err := uow.LegRepository().GetLastByOrder(ctx, reassignedOrder.ID())
	if err != nil {
		return err
	}
	if lastLeg.Status() != leg.Rejected {
		return errs.NewInvalidStateError("reassign order", lastLeg.Status().String())
	}
	if lastLeg.IsAddressedToDistributor(cmd.DistributorID()) {
		return errs.NewValueIsInvalidError("replacement distributor must differ from the one that rejected")
	}

	if _, err = uow.DistributorRepository().Get(ctx, cmd.DistributorID()); err != nil {
		return err
	}

	transporter, err := uow.TransporterRepository().Get(ctx, cmd.TransporterID())
	if err != nil {
		return err
	}
	if !transporter.IsOwnedBySupplier(cmd.SupplierID()) {
		return errs.NewForbiddenError("transporter is not owned by the reassigning supplier")
	}

	if err = reassignedOrder.Reassign(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, reassignedOrder); err != nil {
		return err
	}

	newLeg, err := leg.NewSupplierLeg(
		cmd.LegID(),
		reassignedOrder.ID(),
		lastLeg.LegNumber()+1,
		cmd.SupplierID(),
		cmd.DistributorID(),
		cmd.TransporterID(),
	)
	if err != nil {
		return err
	}
	if err = uow.LegRepository().Add(ctx, newLeg); err != nil {
		return err
	}

	legID := newLeg.ID()
	description := fmt.Sprintf("order reassigned to distributor %s on hop %d", cmd.DistributorID(), newLeg.LegNumber())
	if err = recordTrail(ctx, uow, reassignedOrder.ID(), &legID, tracking.EventOrderReassigned, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

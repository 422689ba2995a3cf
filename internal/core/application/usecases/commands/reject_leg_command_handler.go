package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// RejectLegCommandHandler handles a recipient distributor's refusal of a
// pending custody hop.
//
// Rejection of the first hop moves the order to PendingReassign so the
// supplier can pick a replacement distributor. Rejection of a later hop
// leaves the order status alone: the sending distributor still holds the
// package and reassigns its own outgoing hop.
type RejectLegCommandHandler struct {
	uowFactory ChainUoWFactory
}

// NewRejectLegCommandHandler creates a handler for hop rejection.
func NewRejectLegCommandHandler(uowFactory ChainUoWFactory) RejectLegCommandHandler {
	return RejectLegCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hop rejection command.
func (h *RejectLegCommandHandler) Handle(ctx context.Context, cmd RejectLegCommand) error {
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

	rejectedLeg, err := uow.LegRepository().Get(ctx, cmd.LegID())
	if err != nil {
		return err
	}

	if !rejectedLeg.IsAddressedToDistributor(cmd.DistributorID()) {
		return errs.NewForbiddenError("leg is addressed to a different distributor")
	}

	if err = rejectedLeg.Reject(); err != nil {
		return err
	}
	if err = uow.LegRepository().Update(ctx, rejectedLeg); err != nil {
		return err
	}

	if rejectedLeg.IsFirst() {
		rejectedOrder, orderErr := uow.OrderRepository().GetForUpdate(ctx, rejectedLeg.OrderID())
		if orderErr != nil {
			return orderErr
		}
		if err = rejectedOrder.MarkReassignPending(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, rejectedOrder); err != nil {
			return err
		}
	}

	legID := rejectedLeg.ID()
	description := fmt.Sprintf("hop %d rejected by distributor", rejectedLeg.LegNumber())
	if err = recordTrail(ctx, uow, rejectedLeg.OrderID(), &legID, tracking.EventLegRejected, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// ForwardOrderCommandHandler handles a custodian distributor opening the
// next custody hop.
//
// Forwarding requires the distributor to actually hold the package: its own
// incoming hop must be Delivered. A distributor forwards an order at most
// once; retrying after a rejected outgoing hop goes through leg reassignment
// instead.
type ForwardOrderCommandHandler struct {
	uowFactory ForwardUoWFactory
}

// NewForwardOrderCommandHandler creates a handler for order forwarding.
func NewForwardOrderCommandHandler(uowFactory ForwardUoWFactory) ForwardOrderCommandHandler {
	return ForwardOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the forwarding command.
func (h *ForwardOrderCommandHandler) Handle(ctx context.Context, cmd ForwardOrderCommand) error {
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

	forwardedOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	legs, err := uow.LegRepository().GetAllByOrder(ctx, forwardedOrder.ID())
	if err != nil {
		return err
	}

	var incoming *leg.Leg
	for _, l := range legs {
		if l.IsAddressedToDistributor(cmd.DistributorID()) && l.Status() == leg.Delivered {
			incoming = l
		}
		// Forward-once guard: one outgoing hop per distributor per order.
		if l.IsSentByDistributor(cmd.DistributorID()) {
			return errs.NewConflictError(fmt.Errorf("order %s was already forwarded by distributor %s", cmd.OrderID(), cmd.DistributorID()))
		}
	}
	if incoming == nil {
		return errs.NewForbiddenError("distributor does not hold this package")
	}

	if cmd.ToType() == leg.PartyDistributor {
		if _, err = uow.DistributorRepository().Get(ctx, *cmd.ToDistributorID()); err != nil {
			return err
		}
	}

	transporter, err := uow.TransporterRepository().Get(ctx, cmd.TransporterID())
	if err != nil {
		return err
	}
	if !transporter.IsOwnedByDistributor(cmd.DistributorID()) {
		return errs.NewForbiddenError("transporter is not owned by the forwarding distributor")
	}

	lastLeg, err := uow.LegRepository().GetLastByOrder(ctx, forwardedOrder.ID())
	if err != nil {
		return err
	}

	nextLeg, err := leg.NewDistributorLeg(
		cmd.LegID(),
		forwardedOrder.ID(),
		lastLeg.LegNumber()+1,
		cmd.DistributorID(),
		cmd.ToType(),
		cmd.ToDistributorID(),
		cmd.TransporterID(),
	)
	if err != nil {
		return err
	}
	if err = uow.LegRepository().Add(ctx, nextLeg); err != nil {
		return err
	}

	legID := nextLeg.ID()
	description := fmt.Sprintf("hop %d opened towards %s", nextLeg.LegNumber(), cmd.ToType())
	if err = recordTrail(ctx, uow, forwardedOrder.ID(), &legID, tracking.EventLegCreated, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// ReassignLegCommandHandler handles a distributor replacing its rejected
// outgoing hop. Unlike first-hop reassignment this never touches the order
// status, and a distributor replacement must differ from the recipient that
// rejected.
type ReassignLegCommandHandler struct {
	uowFactory ForwardUoWFactory
}

// NewReassignLegCommandHandler creates a handler for forwarding-hop reassignment.
func NewReassignLegCommandHandler(uowFactory ForwardUoWFactory) ReassignLegCommandHandler {
	return ReassignLegCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hop reassignment command.
func (h *ReassignLegCommandHandler) Handle(ctx context.Context, cmd ReassignLegCommand) error {
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

	lastLeg, err := uow.LegRepository().GetLastByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !lastLeg.IsSentByDistributor(cmd.DistributorID()) {
		return errs.NewForbiddenError("rejected hop was not opened by this distributor")
	}
	if lastLeg.Status() != leg.Rejected {
		return errs.NewInvalidStateError("reassign leg", lastLeg.Status().String())
	}
	if cmd.ToType() == leg.PartyDistributor && lastLeg.IsAddressedToDistributor(*cmd.ToDistributorID()) {
		return errs.NewValueIsInvalidError("replacement distributor must differ from the one that rejected")
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
		return errs.NewForbiddenError("transporter is not owned by the reassigning distributor")
	}

	newLeg, err := leg.NewDistributorLeg(
		cmd.LegID(),
		cmd.OrderID(),
		lastLeg.LegNumber()+1,
		cmd.DistributorID(),
		cmd.ToType(),
		cmd.ToDistributorID(),
		cmd.TransporterID(),
	)
	if err != nil {
		return err
	}
	if err = uow.LegRepository().Add(ctx, newLeg); err != nil {
		return err
	}

	legID := newLeg.ID()
	description := fmt.Sprintf("hop %d reopened towards %s after rejection", newLeg.LegNumber(), cmd.ToType())
	if err = recordTrail(ctx, uow, cmd.OrderID(), &legID, tracking.EventLegCreated, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

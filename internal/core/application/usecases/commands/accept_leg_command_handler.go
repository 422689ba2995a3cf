package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// AcceptLegCommandHandler handles a recipient distributor's acceptance of a
// pending custody hop.
type AcceptLegCommandHandler struct {
	uowFactory ChainUoWFactory
}

// NewAcceptLegCommandHandler creates a handler for hop acceptance.
func NewAcceptLegCommandHandler(uowFactory ChainUoWFactory) AcceptLegCommandHandler {
	return AcceptLegCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hop acceptance command.
func (h *AcceptLegCommandHandler) Handle(ctx context.Context, cmd AcceptLegCommand) error {
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

	acceptedLeg, err := uow.LegRepository().Get(ctx, cmd.LegID())
	if err != nil {
		return err
	}

	if !acceptedLeg.IsAddressedToDistributor(cmd.DistributorID()) {
		return errs.NewForbiddenError("leg is addressed to a different distributor")
	}

	if err = acceptedLeg.Accept(); err != nil {
		return err
	}
	if err = uow.LegRepository().Update(ctx, acceptedLeg); err != nil {
		return err
	}

	legID := acceptedLeg.ID()
	description := fmt.Sprintf("hop %d accepted by distributor", acceptedLeg.LegNumber())
	if err = recordTrail(ctx, uow, acceptedLeg.OrderID(), &legID, tracking.EventLegAccepted, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

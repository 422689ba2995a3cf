package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// ShipForwardCommandHandler handles a distributor shipping its outgoing hop.
// The order is already InProgress by the time forwarding hops exist, so only
// the hop itself changes state.
type ShipForwardCommandHandler struct {
	uowFactory ChainUoWFactory
}

// NewShipForwardCommandHandler creates a handler for forwarding shipment.
func NewShipForwardCommandHandler(uowFactory ChainUoWFactory) ShipForwardCommandHandler {
	return ShipForwardCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the forwarding shipment command.
func (h *ShipForwardCommandHandler) Handle(ctx context.Context, cmd ShipForwardCommand) error {
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

	shippedLeg, err := uow.LegRepository().Get(ctx, cmd.LegID())
	if err != nil {
		return err
	}

	if !shippedLeg.IsSentByDistributor(cmd.DistributorID()) {
		return errs.NewForbiddenError("leg was not opened by this distributor")
	}

	if err = shippedLeg.Ship(); err != nil {
		return err
	}
	if err = uow.LegRepository().Update(ctx, shippedLeg); err != nil {
		return err
	}

	legID := shippedLeg.ID()
	description := fmt.Sprintf("hop %d shipped by distributor", shippedLeg.LegNumber())
	if err = recordTrail(ctx, uow, shippedLeg.OrderID(), &legID, tracking.EventLegShipped, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// ShipOrderCommandHandler handles the supplier shipping the first custody
// hop. The order enters InProgress at the same moment the package leaves the
// supplier's warehouse.
type ShipOrderCommandHandler struct {
	uowFactory ChainUoWFactory
}

// NewShipOrderCommandHandler creates a handler for first-hop shipment.
func NewShipOrderCommandHandler(uowFactory ChainUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment command.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	if !shippedLeg.IsSentBySupplier(cmd.SupplierID()) {
		return errs.NewForbiddenError("leg was not opened by this supplier")
	}

	if err = shippedLeg.Ship(); err != nil {
		return err
	}
	if err = uow.LegRepository().Update(ctx, shippedLeg); err != nil {
		return err
	}

	shippedOrder, err := uow.OrderRepository().GetForUpdate(ctx, shippedLeg.OrderID())
	if err != nil {
		return err
	}
	if err = shippedOrder.StartTransit(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, shippedOrder); err != nil {
		return err
	}

	legID := shippedLeg.ID()
	description := fmt.Sprintf("hop %d shipped by supplier", shippedLeg.LegNumber())
	if err = recordTrail(ctx, uow, shippedLeg.OrderID(), &legID, tracking.EventLegShipped, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

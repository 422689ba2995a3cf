package commands

import (
	"context"

	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the business logic for customer
// cancellation. A pending order is simply cancelled; an approved order also
// returns its reserved stock and voids the not-yet-shipped custody hops.
// Once any hop has shipped, cancellation is refused.
type CancelOrderCommandHandler struct {
	uowFactory CancelUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancelUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelledOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cancelledOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewForbiddenError("order belongs to a different customer")
	}

	legs, err := uow.LegRepository().GetAllByOrder(ctx, cancelledOrder.ID())
	if err != nil {
		return err
	}
	for _, l := range legs {
		if l.Status() == leg.InTransit || l.Status() == leg.Delivered {
			return errs.NewInvalidStateError("cancel order", cancelledOrder.Status().String())
		}
	}

	wasApproved := cancelledOrder.Status() != order.Pending

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, cancelledOrder); err != nil {
		return err
	}

	// Approved orders hold reserved stock and open hops; both are undone
	// inside this transaction.
	if wasApproved {
		supplier, supErr := uow.SupplierRepository().Get(ctx, cancelledOrder.SupplierID())
		if supErr != nil {
			return supErr
		}

		stock, stockErr := uow.InventoryRepository().GetByWarehouseAndProductForUpdate(
			ctx, supplier.WarehouseID(), cancelledOrder.ProductID(),
		)
		if stockErr != nil {
			return stockErr
		}
		if err = stock.Release(cancelledOrder.Quantity()); err != nil {
			return err
		}
		if err = uow.InventoryRepository().Update(ctx, stock); err != nil {
			return err
		}

		for _, l := range legs {
			if !l.Status().IsActive() {
				continue
			}
			if err = l.Void(); err != nil {
				return err
			}
			if err = uow.LegRepository().Update(ctx, l); err != nil {
				return err
			}
		}
	}

	if err = recordTrail(ctx, uow, cancelledOrder.ID(), nil, tracking.EventOrderCancelled, "order cancelled by customer"); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler handles the customer's explicit delivery
// confirmation: the final customer-bound hop and the order both become
// Delivered in one transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory ChainUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory ChainUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	deliveredOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !deliveredOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewForbiddenError("order belongs to a different customer")
	}

	finalLeg, err := uow.LegRepository().GetLastByOrder(ctx, deliveredOrder.ID())
	if err != nil {
		return err
	}
	if !finalLeg.IsCustomerBound() {
		return errs.NewInvalidStateError("confirm delivery", finalLeg.Status().String())
	}

	if err = finalLeg.Deliver(); err != nil {
		return err
	}
	if err = uow.LegRepository().Update(ctx, finalLeg); err != nil {
		return err
	}

	if err = deliveredOrder.ConfirmDelivered(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, deliveredOrder); err != nil {
		return err
	}

	legID := finalLeg.ID()
	if err = recordTrail(ctx, uow, deliveredOrder.ID(), &legID, tracking.EventOrderDelivered, "delivery confirmed by customer"); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

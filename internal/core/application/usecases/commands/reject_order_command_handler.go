package commands

import (
	"context"

	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// RejectOrderCommandHandler handles the business logic for supplier rejection
// of a pending order. No stock was reserved for a pending order, so rejection
// only cancels the order and records the trail entry.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	rejectedOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !rejectedOrder.SupplierID().IsEqual(cmd.SupplierID()) {
		return errs.NewForbiddenError("order is addressed to a different supplier")
	}

	if err = rejectedOrder.Reject(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, rejectedOrder); err != nil {
		return err
	}

	if err = recordTrail(ctx, uow, rejectedOrder.ID(), nil, tracking.EventOrderRejected, "order rejected by supplier"); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"
)

// ConfirmReceiptCommandHandler handles a recipient distributor confirming
// physical receipt of its incoming hop. Custody passes to the recipient, who
// can then forward the package onward.
type ConfirmReceiptCommandHandler struct {
	uowFactory ChainUoWFactory
}

// NewConfirmReceiptCommandHandler creates a handler for receipt confirmation.
func NewConfirmReceiptCommandHandler(uowFactory ChainUoWFactory) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt confirmation command.
func (h *ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) error {
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

	receivedLeg, err := uow.LegRepository().Get(ctx, cmd.LegID())
	if err != nil {
		return err
	}

	if !receivedLeg.IsAddressedToDistributor(cmd.DistributorID()) {
		return errs.NewForbiddenError("leg is addressed to a different distributor")
	}

	if err = receivedLeg.Deliver(); err != nil {
		return err
	}
	if err = uow.LegRepository().Update(ctx, receivedLeg); err != nil {
		return err
	}

	legID := receivedLeg.ID()
	description := fmt.Sprintf("hop %d received by distributor", receivedLeg.LegNumber())
	if err = recordTrail(ctx, uow, receivedLeg.OrderID(), &legID, tracking.EventLegDelivered, description); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

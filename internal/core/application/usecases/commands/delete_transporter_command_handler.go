package commands

import (
	"context"
	"fmt"

	"supplytrace/internal/pkg/errs"
)

// DeleteTransporterCommandHandler handles carrier removal. A carrier still
// assigned to any hop in Pending, Accepted or InTransit status cannot be
// removed; completed history does not block removal.
type DeleteTransporterCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewDeleteTransporterCommandHandler creates a handler for carrier removal.
func NewDeleteTransporterCommandHandler(uowFactory FleetUoWFactory) DeleteTransporterCommandHandler {
	return DeleteTransporterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier removal command.
func (h *DeleteTransporterCommandHandler) Handle(ctx context.Context, cmd DeleteTransporterCommand) error {
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

	removed, err := uow.TransporterRepository().Get(ctx, cmd.TransporterID())
	if err != nil {
		return err
	}

	owned := false
	if cmd.SupplierID() != nil {
		owned = removed.IsOwnedBySupplier(*cmd.SupplierID())
	} else {
		owned = removed.IsOwnedByDistributor(*cmd.DistributorID())
	}
	if !owned {
		return errs.NewForbiddenError("transporter belongs to a different owner")
	}

	active, err := uow.LegRepository().HasActiveByTransporter(ctx, removed.ID())
	if err != nil {
		return err
	}
	if active {
		return errs.NewConflictError(fmt.Errorf("transporter %s still carries active hops", removed.ID()))
	}

	if err = uow.TransporterRepository().Delete(ctx, removed.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"supplytrace/internal/core/domain/model/transporter"
)

// CreateTransporterCommandHandler handles carrier registration for a
// supplier's or distributor's fleet.
type CreateTransporterCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateTransporterCommandHandler creates a handler for carrier registration.
func NewCreateTransporterCommandHandler(uowFactory FleetUoWFactory) CreateTransporterCommandHandler {
	return CreateTransporterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier registration command.
func (h *CreateTransporterCommandHandler) Handle(ctx context.Context, cmd CreateTransporterCommand) error {
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

	var (
		newTransporter *transporter.Transporter
		err            error
	)

	if cmd.SupplierID() != nil {
		if _, err = uow.SupplierRepository().Get(ctx, *cmd.SupplierID()); err != nil {
			return err
		}
		newTransporter, err = transporter.NewSupplierTransporter(
			cmd.TransporterID(), cmd.Name(), cmd.VehicleNumber(), *cmd.SupplierID(),
		)
	} else {
		if _, err = uow.DistributorRepository().Get(ctx, *cmd.DistributorID()); err != nil {
			return err
		}
		newTransporter, err = transporter.NewDistributorTransporter(
			cmd.TransporterID(), cmd.Name(), cmd.VehicleNumber(), *cmd.DistributorID(),
		)
	}
	if err != nil {
		return err
	}

	if err = uow.TransporterRepository().Add(ctx, newTransporter); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

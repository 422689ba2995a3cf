package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrDeleteTransporterCommandIsNotConstructed = errors.New(
	"DeleteTransporterCommand must be created via NewDeleteTransporterCommand constructor",
)

// DeleteTransporterCommand represents an owner removing a carrier from its
// fleet. Exactly one owner identifier must be set, matching the carrier.
type DeleteTransporterCommand struct { //nolint:recvcheck //using for validation
	transporterID kernel.UUID
	supplierID    *kernel.UUID
	distributorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTransporterCommand creates a command to remove a carrier.
func NewDeleteTransporterCommand(
	transporterID kernel.UUID,
	supplierID *kernel.UUID,
	distributorID *kernel.UUID,
) (DeleteTransporterCommand, error) {
	deleteCommand := DeleteTransporterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setTransporterID(transporterID),
		deleteCommand.setOwner(supplierID, distributorID),
	); err != nil {
		return DeleteTransporterCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTransporterCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTransporterCommandIsNotConstructed)
}

// TransporterID returns the identifier of the carrier being removed.
func (c DeleteTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// SupplierID returns the requesting supplier's identifier, or nil.
func (c DeleteTransporterCommand) SupplierID() *kernel.UUID {
	return c.supplierID
}

// DistributorID returns the requesting distributor's identifier, or nil.
func (c DeleteTransporterCommand) DistributorID() *kernel.UUID {
	return c.distributorID
}

func (c *DeleteTransporterCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *DeleteTransporterCommand) setOwner(supplierID, distributorID *kernel.UUID) error {
	if (supplierID == nil) == (distributorID == nil) {
		return ErrTransporterOwnerIsInvalid
	}

	if supplierID != nil {
		if err := supplierID.Validate(); err != nil {
			return err
		}
		id := *supplierID
		c.supplierID = &id
		return nil
	}

	if err := distributorID.Validate(); err != nil {
		return err
	}
	id := *distributorID
	c.distributorID = &id
	return nil
}

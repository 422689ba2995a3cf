package commands

import (
	"errors"
	"strings"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var (
	ErrCreateTransporterCommandIsNotConstructed = errors.New(
		"CreateTransporterCommand must be created via NewCreateTransporterCommand constructor",
	)
	ErrTransporterNameIsRequired = errors.New("name is required")
	ErrTransporterOwnerIsInvalid = errors.New("transporter must be owned by exactly one supplier or distributor")
)

// CreateTransporterCommand represents adding a carrier to a supplier's or
// distributor's fleet. Exactly one owner identifier must be set.
type CreateTransporterCommand struct { //nolint:recvcheck //using for validation
	transporterID kernel.UUID
	name          string
	vehicleNumber string
	supplierID    *kernel.UUID
	distributorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateTransporterCommand creates a command to register a carrier.
func NewCreateTransporterCommand(
	transporterID kernel.UUID,
	name string,
	vehicleNumber string,
	supplierID *kernel.UUID,
	distributorID *kernel.UUID,
) (CreateTransporterCommand, error) {
	transporterCommand := CreateTransporterCommand{
		vehicleNumber: vehicleNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transporterCommand.setTransporterID(transporterID),
		transporterCommand.setName(name),
		transporterCommand.setOwner(supplierID, distributorID),
	); err != nil {
		return CreateTransporterCommand{}, err
	}

	return transporterCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransporterCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransporterCommandIsNotConstructed)
}

// TransporterID returns the unique identifier for the new carrier.
func (c CreateTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// Name returns the carrier's display name.
func (c CreateTransporterCommand) Name() string {
	return c.name
}

// VehicleNumber returns the carrier's vehicle registration, possibly empty.
func (c CreateTransporterCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// SupplierID returns the owning supplier's identifier, or nil.
func (c CreateTransporterCommand) SupplierID() *kernel.UUID {
	return c.supplierID
}

// DistributorID returns the owning distributor's identifier, or nil.
func (c CreateTransporterCommand) DistributorID() *kernel.UUID {
	return c.distributorID
}

func (c *CreateTransporterCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *CreateTransporterCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrTransporterNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateTransporterCommand) setOwner(supplierID, distributorID *kernel.UUID) error {
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

package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrReassignOrderCommandIsNotConstructed = errors.New(
	"ReassignOrderCommand must be created via NewReassignOrderCommand constructor",
)

// ReassignOrderCommand represents a supplier replacing the rejected first
// hop of an order with a new hop to a different distributor.
type ReassignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	supplierID    kernel.UUID
	distributorID kernel.UUID
	transporterID kernel.UUID
	legID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignOrderCommand creates a command to reassign an order's first hop.
func NewReassignOrderCommand(
	orderID kernel.UUID,
	supplierID kernel.UUID,
	distributorID kernel.UUID,
	transporterID kernel.UUID,
	legID kernel.UUID,
) (ReassignOrderCommand, error) {
	reassignCommand := ReassignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reassignCommand.setOrderID(orderID),
		reassignCommand.setSupplierID(supplierID),
		reassignCommand.setDistributorID(distributorID),
		reassignCommand.setTransporterID(transporterID),
		reassignCommand.setLegID(legID),
	); err != nil {
		return ReassignOrderCommand{}, err
	}

	return reassignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrReassignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being reassigned.
func (c ReassignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierID returns the reassigning supplier's identifier.
func (c ReassignOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// DistributorID returns the replacement distributor's identifier.
func (c ReassignOrderCommand) DistributorID() kernel.UUID {
	return c.distributorID
}

// TransporterID returns the carrier chosen for the replacement hop.
func (c ReassignOrderCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// LegID returns the unique identifier for the replacement hop.
func (c ReassignOrderCommand) LegID() kernel.UUID {
	return c.legID
}

func (c *ReassignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *ReassignOrderCommand) setDistributorID(distributorID kernel.UUID) error {
	if err := distributorID.Validate(); err != nil {
		return err
	}

	c.distributorID = distributorID
	return nil
}

func (c *ReassignOrderCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *ReassignOrderCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

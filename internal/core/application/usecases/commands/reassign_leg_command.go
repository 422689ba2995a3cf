package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/pkg/guard"
)

var ErrReassignLegCommandIsNotConstructed = errors.New(
	"ReassignLegCommand must be created via NewReassignLegCommand constructor",
)

// ReassignLegCommand represents a custodian distributor replacing its own
// rejected outgoing hop with a new one. The order status is untouched: the
// package never left this distributor's custody.
type ReassignLegCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	distributorID   kernel.UUID
	toType          leg.PartyType
	toDistributorID *kernel.UUID
	transporterID   kernel.UUID
	legID           kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignLegCommand creates a command to reassign a rejected forwarding hop.
func NewReassignLegCommand(
	orderID kernel.UUID,
	distributorID kernel.UUID,
	toType leg.PartyType,
	toDistributorID *kernel.UUID,
	transporterID kernel.UUID,
	legID kernel.UUID,
) (ReassignLegCommand, error) {
	reassignCommand := ReassignLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reassignCommand.setOrderID(orderID),
		reassignCommand.setDistributorID(distributorID),
		reassignCommand.setRecipient(toType, toDistributorID),
		reassignCommand.setTransporterID(transporterID),
		reassignCommand.setLegID(legID),
	); err != nil {
		return ReassignLegCommand{}, err
	}

	return reassignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignLegCommand) Validate() error {
	return c.guard.Validate(ErrReassignLegCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose hop is reassigned.
func (c ReassignLegCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DistributorID returns the reassigning distributor's identifier.
func (c ReassignLegCommand) DistributorID() kernel.UUID {
	return c.distributorID
}

// ToType returns the party type of the replacement hop's recipient.
func (c ReassignLegCommand) ToType() leg.PartyType {
	return c.toType
}

// ToDistributorID returns the replacement recipient's identifier, or nil for
// a customer-bound hop.
func (c ReassignLegCommand) ToDistributorID() *kernel.UUID {
	return c.toDistributorID
}

// TransporterID returns the carrier chosen for the replacement hop.
func (c ReassignLegCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// LegID returns the unique identifier for the replacement hop.
func (c ReassignLegCommand) LegID() kernel.UUID {
	return c.legID
}

func (c *ReassignLegCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignLegCommand) setDistributorID(distributorID kernel.UUID) error {
	if err := distributorID.Validate(); err != nil {
		return err
	}

	c.distributorID = distributorID
	return nil
}

func (c *ReassignLegCommand) setRecipient(toType leg.PartyType, toDistributorID *kernel.UUID) error {
	if err := toType.ValidateAsRecipient(); err != nil {
		return err
	}

	if toType == leg.PartyDistributor {
		if toDistributorID == nil {
			return ErrRecipientIsInvalid
		}
		if err := toDistributorID.Validate(); err != nil {
			return err
		}
		id := *toDistributorID
		c.toDistributorID = &id
	} else if toDistributorID != nil {
		return ErrRecipientIsInvalid
	}

	c.toType = toType
	return nil
}

func (c *ReassignLegCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *ReassignLegCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

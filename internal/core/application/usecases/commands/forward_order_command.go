package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/pkg/guard"
)

var (
	ErrForwardOrderCommandIsNotConstructed = errors.New(
		"ForwardOrderCommand must be created via NewForwardOrderCommand constructor",
	)
	ErrRecipientIsInvalid = errors.New("recipient distributor is required for a distributor-bound hop")
)

// ForwardOrderCommand represents a custodian distributor opening the next
// hop of the chain: either to another distributor or the final hop to the
// customer.
type ForwardOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	distributorID   kernel.UUID
	toType          leg.PartyType
	toDistributorID *kernel.UUID
	transporterID   kernel.UUID
	legID           kernel.UUID

	guard guard.ConstructorGuard
}

// NewForwardOrderCommand creates a command to forward an order. For a
// customer-bound hop toDistributorID must be nil; for a distributor-bound
// hop it is required.
func NewForwardOrderCommand(
	orderID kernel.UUID,
	distributorID kernel.UUID,
	toType leg.PartyType,
	toDistributorID *kernel.UUID,
	transporterID kernel.UUID,
	legID kernel.UUID,
) (ForwardOrderCommand, error) {
	forwardCommand := ForwardOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		forwardCommand.setOrderID(orderID),
		forwardCommand.setDistributorID(distributorID),
		forwardCommand.setRecipient(toType, toDistributorID),
		forwardCommand.setTransporterID(transporterID),
		forwardCommand.setLegID(legID),
	); err != nil {
		return ForwardOrderCommand{}, err
	}

	return forwardCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ForwardOrderCommand) Validate() error {
	return c.guard.Validate(ErrForwardOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being forwarded.
func (c ForwardOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DistributorID returns the forwarding distributor's identifier.
func (c ForwardOrderCommand) DistributorID() kernel.UUID {
	return c.distributorID
}

// ToType returns the party type of the new hop's recipient.
func (c ForwardOrderCommand) ToType() leg.PartyType {
	return c.toType
}

// ToDistributorID returns the recipient distributor's identifier, or nil for
// a customer-bound hop.
func (c ForwardOrderCommand) ToDistributorID() *kernel.UUID {
	return c.toDistributorID
}

// TransporterID returns the carrier chosen for the new hop.
func (c ForwardOrderCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// LegID returns the unique identifier for the new hop.
func (c ForwardOrderCommand) LegID() kernel.UUID {
	return c.legID
}

func (c *ForwardOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ForwardOrderCommand) setDistributorID(distributorID kernel.UUID) error {
	if err := distributorID.Validate(); err != nil {
		return err
	}

	c.distributorID = distributorID
	return nil
}

func (c *ForwardOrderCommand) setRecipient(toType leg.PartyType, toDistributorID *kernel.UUID) error {
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

func (c *ForwardOrderCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *ForwardOrderCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}
